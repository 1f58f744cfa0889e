package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/models"
	"parkgarage/internal/services"
)

// ListReservations lists all reservations.
func ListReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reservations []models.Reservation
		if err := db.Find(&reservations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reservations": reservations})
	}
}

// ListGarageReservations lists the reservations placed on any space of one
// garage: first the garage's space ids, then the reservations whose space_id
// falls in that set.
func ListGarageReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		garageID := c.Param("id")

		var spaceIDs []uint
		if err := db.Model(&models.Space{}).
			Where("garage_id = ?", garageID).
			Pluck("id", &spaceIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var reservations []models.Reservation
		if err := db.Where("space_id IN ?", spaceIDs).Find(&reservations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reservations": reservations})
	}
}

// CreateReservation issues a reservation under a fresh unique code.
func CreateReservation(issuer *services.ReservationIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID      uint       `json:"user_id" binding:"required"`
			SpaceID     uint       `json:"space_id" binding:"required"`
			VehicleID   uint       `json:"vehicle_id" binding:"required"`
			StartTime   time.Time  `json:"start_time" binding:"required"`
			EndTime     time.Time  `json:"end_time" binding:"required"`
			PenaltyTime *time.Time `json:"penalty_time"`
			PenaltyNote string     `json:"penalty_note"`
			Active      bool       `json:"active"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		reservation, err := issuer.Create(c.Request.Context(), services.ReservationInput{
			UserID:      input.UserID,
			SpaceID:     input.SpaceID,
			VehicleID:   input.VehicleID,
			StartTime:   input.StartTime,
			EndTime:     input.EndTime,
			PenaltyTime: input.PenaltyTime,
			PenaltyNote: input.PenaltyNote,
			Active:      input.Active,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
	}
}
