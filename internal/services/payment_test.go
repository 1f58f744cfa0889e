package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"parkgarage/internal/models"
	"parkgarage/internal/services"
)

type fakePaymentStore struct {
	reservations map[uint]*models.Reservation
	spaces       map[uint]*models.Space
	garages      map[uint]*models.Garage
	payments     []models.Payment
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{
		reservations: make(map[uint]*models.Reservation),
		spaces:       make(map[uint]*models.Space),
		garages:      make(map[uint]*models.Garage),
	}
}

func (f *fakePaymentStore) ReservationByID(_ context.Context, id uint) (*models.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakePaymentStore) SpaceByID(_ context.Context, id uint) (*models.Space, error) {
	s, ok := f.spaces[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakePaymentStore) GarageByID(_ context.Context, id uint) (*models.Garage, error) {
	g, ok := f.garages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (f *fakePaymentStore) InsertPayment(_ context.Context, payment *models.Payment) error {
	payment.ID = uint(len(f.payments) + 1)
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakePaymentStore) addChain(reservationID uint, start, end time.Time, hourlyRate float64) {
	f.reservations[reservationID] = &models.Reservation{
		SpaceID:   10,
		StartTime: start,
		EndTime:   end,
	}
	f.spaces[10] = &models.Space{GarageID: 20}
	f.garages[20] = &models.Garage{HourlyRate: hourlyRate}
}

func TestCreatePaymentComputesTotal(t *testing.T) {
	st := newFakePaymentStore()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 10, 11, 30, 0, 0, time.UTC)
	st.addChain(1, start, end, 2.00)

	calculator := services.NewFeeCalculator(st)
	payment, err := calculator.CreatePayment(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, uint(1), payment.ReservationID)
	assert.Equal(t, 2.00, payment.HourlyRate)
	assert.Equal(t, 5.00, payment.TotalAmount)
	assert.Zero(t, payment.AdvanceAmount)
	assert.Zero(t, payment.PenaltyAmount)
	assert.Len(t, st.payments, 1)
}

// Elapsed hours is an absolute difference, so a reversed window charges the
// same amount.
func TestCreatePaymentReversedWindow(t *testing.T) {
	st := newFakePaymentStore()
	start := time.Date(2024, 5, 10, 11, 30, 0, 0, time.UTC)
	end := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	st.addChain(1, start, end, 2.00)

	calculator := services.NewFeeCalculator(st)
	payment, err := calculator.CreatePayment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5.00, payment.TotalAmount)
}

func TestCreatePaymentRoundsToCents(t *testing.T) {
	st := newFakePaymentStore()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	// 100 minutes at 2.50/h = 4.1666... -> 4.17
	st.addChain(1, start, start.Add(100*time.Minute), 2.50)

	calculator := services.NewFeeCalculator(st)
	payment, err := calculator.CreatePayment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4.17, payment.TotalAmount)
	assert.Equal(t, 2.50, payment.HourlyRate)
}

func TestCreatePaymentLookupFailureLeavesNoPayment(t *testing.T) {
	st := newFakePaymentStore()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	st.addChain(1, start, start.Add(time.Hour), 2.00)
	delete(st.garages, 20)

	calculator := services.NewFeeCalculator(st)
	_, err := calculator.CreatePayment(context.Background(), 1)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, st.payments)
}

func TestCreatePaymentUnknownReservation(t *testing.T) {
	calculator := services.NewFeeCalculator(newFakePaymentStore())
	_, err := calculator.CreatePayment(context.Background(), 404)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
