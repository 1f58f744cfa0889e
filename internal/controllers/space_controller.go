package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/models"
	"parkgarage/internal/services"
)

// ListGarageSpaces lists the spaces belonging to one garage.
func ListGarageSpaces(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		garageID := c.Param("id")

		var spaces []models.Space
		if err := db.Where("garage_id = ?", garageID).Find(&spaces).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"spaces": spaces})
	}
}

// CreateGarageSpace adds an active space to a garage and reports the garage's
// capacity after the ledger bump.
func CreateGarageSpace(ledger *services.CapacityLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		garageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid garage id"})
			return
		}

		var input struct {
			SpaceType string `json:"space_type" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		space, capacity, err := ledger.CreateSpace(c.Request.Context(), uint(garageID), input.SpaceType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"space": space, "capacity": capacity})
	}
}

// DisableSpace marks a space inactive and decrements its garage's capacity.
func DisableSpace(ledger *services.CapacityLedger) gin.HandlerFunc {
	return toggleSpace(ledger, false)
}

// EnableSpace marks a space active and increments its garage's capacity.
func EnableSpace(ledger *services.CapacityLedger) gin.HandlerFunc {
	return toggleSpace(ledger, true)
}

func toggleSpace(ledger *services.CapacityLedger, active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		spaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid space id"})
			return
		}

		space, capacity, err := ledger.SetActive(c.Request.Context(), uint(spaceID), active)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "space not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"space": space, "capacity": capacity})
	}
}
