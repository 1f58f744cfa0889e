package routes

import (
	"github.com/gin-gonic/gin"

	"parkgarage/internal/controllers"
	"parkgarage/internal/services"
)

func PaymentRoutes(r *gin.Engine, calculator *services.FeeCalculator) {
	payments := r.Group("/api/payments")
	{
		payments.POST("", controllers.CreatePayment(calculator))
	}
}
