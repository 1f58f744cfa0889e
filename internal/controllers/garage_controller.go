package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/models"
)

// ListGarages lists all garages.
func ListGarages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var garages []models.Garage
		if err := db.Find(&garages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"garages": garages})
	}
}

// CreateGarage registers a new garage.
func CreateGarage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Capacity       int     `json:"capacity"`
			Latitude       float64 `json:"latitude"`
			Longitude      float64 `json:"longitude"`
			Address        string  `json:"address" binding:"required"`
			Description    string  `json:"description"`
			City           string  `json:"city"`
			ReferenceImage string  `json:"reference_image"`
			HourlyRate     float64 `json:"hourly_rate"`
			PenaltyRate    float64 `json:"penalty_rate"`
			Active         bool    `json:"active"`
			OwnerID        uint    `json:"owner_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		garage := models.Garage{
			Capacity:       input.Capacity,
			Latitude:       input.Latitude,
			Longitude:      input.Longitude,
			Address:        input.Address,
			Description:    input.Description,
			City:           input.City,
			ReferenceImage: input.ReferenceImage,
			HourlyRate:     input.HourlyRate,
			PenaltyRate:    input.PenaltyRate,
			Active:         input.Active,
			OwnerID:        input.OwnerID,
		}
		if err := db.Create(&garage).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"garage": garage})
	}
}

// UpdateGarage modifies an existing garage.
func UpdateGarage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var garage models.Garage
		if err := db.First(&garage, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "garage not found"})
			return
		}

		var input struct {
			Capacity       *int     `json:"capacity"`
			Latitude       *float64 `json:"latitude"`
			Longitude      *float64 `json:"longitude"`
			Address        *string  `json:"address"`
			Description    *string  `json:"description"`
			City           *string  `json:"city"`
			ReferenceImage *string  `json:"reference_image"`
			HourlyRate     *float64 `json:"hourly_rate"`
			PenaltyRate    *float64 `json:"penalty_rate"`
			Active         *bool    `json:"active"`
			OwnerID        *uint    `json:"owner_id"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Capacity != nil {
			garage.Capacity = *input.Capacity
		}
		if input.Latitude != nil {
			garage.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			garage.Longitude = *input.Longitude
		}
		if input.Address != nil {
			garage.Address = *input.Address
		}
		if input.Description != nil {
			garage.Description = *input.Description
		}
		if input.City != nil {
			garage.City = *input.City
		}
		if input.ReferenceImage != nil {
			garage.ReferenceImage = *input.ReferenceImage
		}
		if input.HourlyRate != nil {
			garage.HourlyRate = *input.HourlyRate
		}
		if input.PenaltyRate != nil {
			garage.PenaltyRate = *input.PenaltyRate
		}
		if input.Active != nil {
			garage.Active = *input.Active
		}
		if input.OwnerID != nil {
			garage.OwnerID = *input.OwnerID
		}

		if err := db.Save(&garage).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"garage": garage})
	}
}
