// internal/models/garage.go
package models

import "gorm.io/gorm"

// Garage is a parking facility owned by a Person.
// Capacity is a cached count of the garage's active spaces, maintained by the
// capacity ledger; it is not authoritative.
type Garage struct {
	gorm.Model
	Capacity       int     `json:"capacity"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Address        string  `json:"address"`
	Description    string  `json:"description"`
	City           string  `json:"city"`
	ReferenceImage string  `json:"reference_image"`
	HourlyRate     float64 `json:"hourly_rate" gorm:"type:decimal(10,2)"`
	PenaltyRate    float64 `json:"penalty_rate" gorm:"type:decimal(10,2)"`
	Active         bool    `json:"active" gorm:"default:true"`
	OwnerID        uint    `json:"owner_id"` // Foreign key to Person

	Spaces []Space `gorm:"foreignKey:GarageID" json:"spaces,omitempty"`
}
