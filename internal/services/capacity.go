package services

import (
	"context"

	"parkgarage/internal/models"
)

// CapacityStore is the slice of the store gateway the ledger needs.
type CapacityStore interface {
	InsertSpace(ctx context.Context, space *models.Space) error
	SpaceByID(ctx context.Context, id uint) (*models.Space, error)
	SetSpaceActive(ctx context.Context, id uint, active bool) error
	AdjustCapacity(ctx context.Context, garageID uint, delta int) (int, error)
}

// CapacityLedger keeps Garage.Capacity equal to the count of active spaces
// under it. Each capacity adjustment is a single atomic update, but the
// space-flag write and the capacity write are still two statements: a
// failure between them leaves the ledger behind by one, and the first error
// aborts with no compensation.
type CapacityLedger struct {
	store CapacityStore
}

func NewCapacityLedger(store CapacityStore) *CapacityLedger {
	return &CapacityLedger{store: store}
}

// CreateSpace inserts an active space into the garage and bumps the garage
// capacity. Returns the new space and the capacity after the bump.
func (l *CapacityLedger) CreateSpace(ctx context.Context, garageID uint, spaceType string) (*models.Space, int, error) {
	space := &models.Space{
		GarageID:  garageID,
		SpaceType: spaceType,
		Active:    true,
	}
	if err := l.store.InsertSpace(ctx, space); err != nil {
		return nil, 0, err
	}

	capacity, err := l.store.AdjustCapacity(ctx, garageID, 1)
	if err != nil {
		return nil, 0, err
	}
	return space, capacity, nil
}

// SetActive flips the space flag and moves the owning garage's capacity by
// one in the matching direction. The previous flag value is not consulted:
// disabling an already disabled space still decrements.
func (l *CapacityLedger) SetActive(ctx context.Context, spaceID uint, active bool) (*models.Space, int, error) {
	space, err := l.store.SpaceByID(ctx, spaceID)
	if err != nil {
		return nil, 0, err
	}

	if err := l.store.SetSpaceActive(ctx, spaceID, active); err != nil {
		return nil, 0, err
	}
	space.Active = active

	delta := -1
	if active {
		delta = 1
	}
	capacity, err := l.store.AdjustCapacity(ctx, space.GarageID, delta)
	if err != nil {
		return nil, 0, err
	}
	return space, capacity, nil
}
