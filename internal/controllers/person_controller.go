package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/models"
	"parkgarage/internal/services"
)

type personInput struct {
	Name         string `json:"name" binding:"required"`
	Surname      string `json:"surname"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"required,email"`
	ProfileImage string `json:"profile_image"`
	Role         string `json:"role" binding:"required,oneof=regular administrator lessor"`
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Status       string `json:"status"`
}

// ListPeople returns every person.
func ListPeople(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var people []models.Person
		if err := db.Find(&people).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"people": people})
	}
}

// ListPeopleByRole returns every person carrying the given role, or 404 when
// none do.
func ListPeopleByRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.Param("role")

		var people []models.Person
		if err := db.Where("role = ?", role).Find(&people).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if len(people) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "no people found with role '" + role + "'"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"people": people})
	}
}

// CreatePerson registers a new person; the password is hashed before it is
// stored.
func CreatePerson(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input personInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hashed, err := services.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}

		person := models.Person{
			Name:         input.Name,
			Surname:      input.Surname,
			Phone:        input.Phone,
			Email:        input.Email,
			ProfileImage: input.ProfileImage,
			Role:         input.Role,
			Username:     input.Username,
			Password:     hashed,
			Status:       input.Status,
		}
		if err := db.Create(&person).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"person": person})
	}
}

// UpdatePerson modifies the profile fields of an existing person. Username,
// password and status are not updatable through this route.
func UpdatePerson(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var person models.Person
		if err := db.First(&person, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
			return
		}

		var input struct {
			Name         *string `json:"name"`
			Surname      *string `json:"surname"`
			Phone        *string `json:"phone"`
			Email        *string `json:"email"`
			ProfileImage *string `json:"profile_image"`
			Role         *string `json:"role"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			person.Name = *input.Name
		}
		if input.Surname != nil {
			person.Surname = *input.Surname
		}
		if input.Phone != nil {
			person.Phone = *input.Phone
		}
		if input.Email != nil {
			person.Email = *input.Email
		}
		if input.ProfileImage != nil {
			person.ProfileImage = *input.ProfileImage
		}
		if input.Role != nil {
			person.Role = *input.Role
		}

		if err := db.Save(&person).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"person": person})
	}
}
