// internal/models/vehicle.go
package models

import (
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	OwnerID     uint   `json:"owner_id"` // link to the owning person
	VehicleType string `json:"vehicle_type"`
	Plate       string `json:"plate"`
}
