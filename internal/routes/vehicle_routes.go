package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/controllers"
)

func VehicleRoutes(r *gin.Engine, db *gorm.DB) {
	vehicles := r.Group("/api/vehicles")
	{
		vehicles.GET("", controllers.ListVehicles(db))
		vehicles.POST("", controllers.CreateVehicle(db))
		vehicles.PUT("/:id", controllers.UpdateVehicle(db))
		vehicles.DELETE("/:id", controllers.DeleteVehicle(db))
	}
}
