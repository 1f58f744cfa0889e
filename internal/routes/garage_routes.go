package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/controllers"
	"parkgarage/internal/services"
)

func GarageRoutes(r *gin.Engine, db *gorm.DB, ledger *services.CapacityLedger) {
	garages := r.Group("/api/garages")
	{
		garages.GET("", controllers.ListGarages(db))
		garages.POST("", controllers.CreateGarage(db))
		garages.PUT("/:id", controllers.UpdateGarage(db))

		// Nested under the owning garage
		garages.GET("/:id/spaces", controllers.ListGarageSpaces(db))
		garages.POST("/:id/spaces", controllers.CreateGarageSpace(ledger))
		garages.GET("/:id/reservations", controllers.ListGarageReservations(db))
	}
}
