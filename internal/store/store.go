// Package store is the GORM-backed gateway to the relational store. The
// services consume it through narrow interfaces they declare themselves.
package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parkgarage/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) withCtx(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Store) InsertSpace(ctx context.Context, space *models.Space) error {
	return s.withCtx(ctx).Create(space).Error
}

func (s *Store) SpaceByID(ctx context.Context, id uint) (*models.Space, error) {
	var space models.Space
	if err := s.withCtx(ctx).First(&space, id).Error; err != nil {
		return nil, err
	}
	return &space, nil
}

func (s *Store) SetSpaceActive(ctx context.Context, id uint, active bool) error {
	res := s.withCtx(ctx).Model(&models.Space{}).Where("id = ?", id).
		Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AdjustCapacity applies delta to the garage's cached capacity in a single
// UPDATE ... RETURNING, so concurrent adjustments cannot lose each other and
// the value handed back is the one this statement produced.
func (s *Store) AdjustCapacity(ctx context.Context, garageID uint, delta int) (int, error) {
	var garage models.Garage
	res := s.withCtx(ctx).Model(&garage).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "capacity"}}}).
		Where("id = ?", garageID).
		UpdateColumn("capacity", gorm.Expr("capacity + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return garage.Capacity, nil
}

func (s *Store) GarageByID(ctx context.Context, id uint) (*models.Garage, error) {
	var garage models.Garage
	if err := s.withCtx(ctx).First(&garage, id).Error; err != nil {
		return nil, err
	}
	return &garage, nil
}

func (s *Store) ReservationCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.withCtx(ctx).Model(&models.Reservation{}).
		Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (s *Store) InsertReservation(ctx context.Context, reservation *models.Reservation) error {
	return s.withCtx(ctx).Create(reservation).Error
}

func (s *Store) ReservationByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.withCtx(ctx).First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *Store) InsertPayment(ctx context.Context, payment *models.Payment) error {
	return s.withCtx(ctx).Create(payment).Error
}

// PeopleByUsername returns every person carrying the login name. The column
// has no unique constraint, so more than one row is possible; row order is
// whatever the store returns.
func (s *Store) PeopleByUsername(ctx context.Context, username string) ([]models.Person, error) {
	var people []models.Person
	if err := s.withCtx(ctx).Where("username = ?", username).Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}
