package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/controllers"
)

func PersonRoutes(r *gin.Engine, db *gorm.DB) {
	people := r.Group("/api/people")
	{
		people.GET("", controllers.ListPeople(db))
		people.GET("/:role", controllers.ListPeopleByRole(db))
		people.POST("", controllers.CreatePerson(db))
		people.PUT("/:id", controllers.UpdatePerson(db))
	}
}
