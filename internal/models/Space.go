package models

import "gorm.io/gorm"

// Space is one slot inside a garage. Its Active flag drives the garage
// capacity increment/decrement.
type Space struct {
	gorm.Model
	GarageID  uint   `json:"garage_id" gorm:"index"`
	SpaceType string `json:"space_type"`
	Active    bool   `json:"active" gorm:"default:true"`
}
