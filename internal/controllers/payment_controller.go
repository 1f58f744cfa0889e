package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/services"
)

// CreatePayment settles a reservation: the fee calculator derives the total
// from the reservation's span and its garage's hourly rate.
func CreatePayment(calculator *services.FeeCalculator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ReservationID uint `json:"reservation_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		payment, err := calculator.CreatePayment(c.Request.Context(), input.ReservationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"payment": payment})
	}
}
