package routes

import (
	"github.com/gin-gonic/gin"

	"parkgarage/internal/controllers"
	"parkgarage/internal/services"
)

func SpaceRoutes(r *gin.Engine, ledger *services.CapacityLedger) {
	spaces := r.Group("/api/spaces")
	{
		spaces.PUT("/:id/disable", controllers.DisableSpace(ledger))
		spaces.PUT("/:id/enable", controllers.EnableSpace(ledger))
	}
}
