package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"parkgarage/internal/models"
)

type ReservationStore interface {
	ReservationCodeExists(ctx context.Context, code string) (bool, error)
	InsertReservation(ctx context.Context, reservation *models.Reservation) error
}

// ReservationInput carries the caller-supplied reservation fields; the code
// is never caller-supplied.
type ReservationInput struct {
	UserID      uint
	SpaceID     uint
	VehicleID   uint
	StartTime   time.Time
	EndTime     time.Time
	PenaltyTime *time.Time
	PenaltyNote string
	Active      bool
}

// ReservationIssuer persists reservations under a fresh globally unique
// human-facing code.
type ReservationIssuer struct {
	store ReservationStore
}

func NewReservationIssuer(store ReservationStore) *ReservationIssuer {
	return &ReservationIssuer{store: store}
}

// Create generates random 128-bit codes until one is unused, then inserts
// the reservation under it. The existence check and the insert are separate
// statements; if another issuance wins the race in between, the code's
// unique index rejects the insert and the loop draws a new code.
func (i *ReservationIssuer) Create(ctx context.Context, in ReservationInput) (*models.Reservation, error) {
	for {
		code := uuid.NewString()

		exists, err := i.store.ReservationCodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		reservation := &models.Reservation{
			Code:        code,
			UserID:      in.UserID,
			SpaceID:     in.SpaceID,
			VehicleID:   in.VehicleID,
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
			PenaltyTime: in.PenaltyTime,
			PenaltyNote: in.PenaltyNote,
			Active:      in.Active,
		}
		err = i.store.InsertReservation(ctx, reservation)
		if isUniqueViolation(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return reservation, nil
	}
}

// isUniqueViolation recognizes SQLSTATE 23505 from the pgx-based gorm
// postgres driver, and from lib/pq for connections made through it.
func isUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgxErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
