package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation books a space for a person/vehicle over a time window.
// Code is generated server-side and must be unique across all reservations;
// the unique index backs the issuer's collision retry.
type Reservation struct {
	gorm.Model
	Code        string     `json:"code" gorm:"uniqueIndex"`
	UserID      uint       `json:"user_id"`
	SpaceID     uint       `json:"space_id" gorm:"index"`
	VehicleID   uint       `json:"vehicle_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	PenaltyTime *time.Time `json:"penalty_time,omitempty"`
	PenaltyNote string     `json:"penalty_note"`
	Active      bool       `json:"active" gorm:"default:true"`
}
