package models

import "gorm.io/gorm"

// Payment settles a reservation. HourlyRate snapshots the garage rate at
// payment time; TotalAmount is elapsed hours times that rate, rounded to
// cents. Advance and penalty are always zero at creation.
type Payment struct {
	gorm.Model
	ReservationID uint    `json:"reservation_id" gorm:"index"`
	HourlyRate    float64 `json:"hourly_rate" gorm:"type:decimal(10,2)"`
	TotalAmount   float64 `json:"total_amount" gorm:"type:decimal(10,2)"`
	AdvanceAmount float64 `json:"advance_amount" gorm:"type:decimal(10,2)"`
	PenaltyAmount float64 `json:"penalty_amount" gorm:"type:decimal(10,2)"`
}
