package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"parkgarage/internal/models"
	"parkgarage/internal/services"
)

type fakeCapacityStore struct {
	spaces     map[uint]*models.Space
	capacities map[uint]int
	nextID     uint

	insertErr error
	adjustErr error
}

func newFakeCapacityStore() *fakeCapacityStore {
	return &fakeCapacityStore{
		spaces:     make(map[uint]*models.Space),
		capacities: make(map[uint]int),
	}
}

func (f *fakeCapacityStore) InsertSpace(_ context.Context, space *models.Space) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	space.ID = f.nextID
	stored := *space
	f.spaces[space.ID] = &stored
	return nil
}

func (f *fakeCapacityStore) SpaceByID(_ context.Context, id uint) (*models.Space, error) {
	space, ok := f.spaces[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *space
	return &copied, nil
}

func (f *fakeCapacityStore) SetSpaceActive(_ context.Context, id uint, active bool) error {
	space, ok := f.spaces[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	space.Active = active
	return nil
}

func (f *fakeCapacityStore) AdjustCapacity(_ context.Context, garageID uint, delta int) (int, error) {
	if f.adjustErr != nil {
		return 0, f.adjustErr
	}
	if _, ok := f.capacities[garageID]; !ok {
		return 0, gorm.ErrRecordNotFound
	}
	f.capacities[garageID] += delta
	return f.capacities[garageID], nil
}

func TestCreateSpaceIncrementsCapacity(t *testing.T) {
	st := newFakeCapacityStore()
	st.capacities[7] = 3
	ledger := services.NewCapacityLedger(st)

	space, capacity, err := ledger.CreateSpace(context.Background(), 7, "car")
	require.NoError(t, err)
	assert.Equal(t, 4, capacity)
	assert.Equal(t, uint(7), space.GarageID)
	assert.Equal(t, "car", space.SpaceType)
	assert.True(t, space.Active)
	assert.Equal(t, 4, st.capacities[7])
}

func TestToggleAdjustsCapacityByOne(t *testing.T) {
	st := newFakeCapacityStore()
	st.capacities[1] = 0
	ledger := services.NewCapacityLedger(st)

	space, capacity, err := ledger.CreateSpace(context.Background(), 1, "motorcycle")
	require.NoError(t, err)
	require.Equal(t, 1, capacity)

	disabled, capacity, err := ledger.SetActive(context.Background(), space.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, capacity)
	assert.False(t, disabled.Active)
	assert.False(t, st.spaces[space.ID].Active)

	enabled, capacity, err := ledger.SetActive(context.Background(), space.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, capacity)
	assert.True(t, enabled.Active)
}

// The ledger does not consult the previous flag: a repeated disable keeps
// decrementing. That matches the bookkeeping contract, which only promises
// consistency when enable/disable calls alternate.
func TestRepeatedDisableKeepsDecrementing(t *testing.T) {
	st := newFakeCapacityStore()
	st.capacities[1] = 0
	ledger := services.NewCapacityLedger(st)

	space, _, err := ledger.CreateSpace(context.Background(), 1, "car")
	require.NoError(t, err)

	_, capacity, err := ledger.SetActive(context.Background(), space.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, capacity)

	_, capacity, err = ledger.SetActive(context.Background(), space.ID, false)
	require.NoError(t, err)
	assert.Equal(t, -1, capacity)
}

func TestCreateSpaceUnknownGarage(t *testing.T) {
	st := newFakeCapacityStore()
	ledger := services.NewCapacityLedger(st)

	_, _, err := ledger.CreateSpace(context.Background(), 99, "car")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// No compensation: the space row survives the failed capacity write.
	assert.Len(t, st.spaces, 1)
}

func TestSetActiveUnknownSpace(t *testing.T) {
	st := newFakeCapacityStore()
	ledger := services.NewCapacityLedger(st)

	_, _, err := ledger.SetActive(context.Background(), 42, false)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCapacityAdjustErrorAborts(t *testing.T) {
	st := newFakeCapacityStore()
	st.capacities[1] = 0
	ledger := services.NewCapacityLedger(st)

	space, _, err := ledger.CreateSpace(context.Background(), 1, "car")
	require.NoError(t, err)

	st.adjustErr = errors.New("store unavailable")
	_, _, err = ledger.SetActive(context.Background(), space.ID, false)
	require.EqualError(t, err, "store unavailable")

	// The flag write already happened when the capacity write failed.
	assert.False(t, st.spaces[space.ID].Active)
}
