package routes

import (
	"github.com/gin-gonic/gin"

	"parkgarage/internal/controllers"
	"parkgarage/internal/services"
)

func AuthRoutes(r *gin.Engine, gate *services.CredentialGate) {
	login := r.Group("/api/login")
	{
		login.POST("/user", controllers.LoginUser(gate))
		login.POST("/admin", controllers.LoginAdministrator(gate))
		login.POST("/lessor", controllers.LoginLessor(gate))
	}
}
