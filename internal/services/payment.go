package services

import (
	"context"
	"math"

	"parkgarage/internal/models"
)

type PaymentStore interface {
	ReservationByID(ctx context.Context, id uint) (*models.Reservation, error)
	SpaceByID(ctx context.Context, id uint) (*models.Space, error)
	GarageByID(ctx context.Context, id uint) (*models.Garage, error)
	InsertPayment(ctx context.Context, payment *models.Payment) error
}

// FeeCalculator derives a payment from a reservation's time span and its
// garage's hourly rate. The payment row is inserted last, so a failed lookup
// leaves no partial state.
type FeeCalculator struct {
	store PaymentStore
}

func NewFeeCalculator(store PaymentStore) *FeeCalculator {
	return &FeeCalculator{store: store}
}

// CreatePayment walks reservation -> space -> garage, charges the garage's
// hourly rate for the reservation's elapsed hours, and records the payment
// with zero advance and penalty amounts.
func (f *FeeCalculator) CreatePayment(ctx context.Context, reservationID uint) (*models.Payment, error) {
	reservation, err := f.store.ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	space, err := f.store.SpaceByID(ctx, reservation.SpaceID)
	if err != nil {
		return nil, err
	}

	garage, err := f.store.GarageByID(ctx, space.GarageID)
	if err != nil {
		return nil, err
	}

	hours := math.Abs(reservation.EndTime.Sub(reservation.StartTime).Hours())
	payment := &models.Payment{
		ReservationID: reservationID,
		HourlyRate:    garage.HourlyRate,
		TotalAmount:   roundMoney(hours * garage.HourlyRate),
		AdvanceAmount: 0,
		PenaltyAmount: 0,
	}
	if err := f.store.InsertPayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// roundMoney rounds to cents.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
