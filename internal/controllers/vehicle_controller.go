package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/models"
)

// ListVehicles lists all vehicles.
func ListVehicles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicles []models.Vehicle
		if err := db.Find(&vehicles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
	}
}

// CreateVehicle registers a vehicle for a person.
func CreateVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			OwnerID     uint   `json:"owner_id" binding:"required"`
			VehicleType string `json:"vehicle_type" binding:"required"`
			Plate       string `json:"plate" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle input: " + err.Error()})
			return
		}

		vehicle := models.Vehicle{
			OwnerID:     input.OwnerID,
			VehicleType: input.VehicleType,
			Plate:       input.Plate,
		}
		if err := db.Create(&vehicle).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
	}
}

// UpdateVehicle modifies an existing vehicle.
func UpdateVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var vehicle models.Vehicle
		if err := db.First(&vehicle, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}

		var input struct {
			OwnerID     *uint   `json:"owner_id"`
			VehicleType *string `json:"vehicle_type"`
			Plate       *string `json:"plate"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.OwnerID != nil {
			vehicle.OwnerID = *input.OwnerID
		}
		if input.VehicleType != nil {
			vehicle.VehicleType = *input.VehicleType
		}
		if input.Plate != nil {
			vehicle.Plate = *input.Plate
		}

		if err := db.Save(&vehicle).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
	}
}

// DeleteVehicle removes a vehicle by ID.
func DeleteVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var vehicle models.Vehicle
		if err := db.First(&vehicle, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}

		if err := db.Delete(&vehicle).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
	}
}
