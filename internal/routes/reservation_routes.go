package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/controllers"
	"parkgarage/internal/services"
)

func ReservationRoutes(r *gin.Engine, db *gorm.DB, issuer *services.ReservationIssuer) {
	reservations := r.Group("/api/reservations")
	{
		reservations.GET("", controllers.ListReservations(db))
		reservations.POST("", controllers.CreateReservation(issuer))
	}
}
