package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"parkgarage/internal/models"
	"parkgarage/internal/services"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser signs in any person regardless of role.
func LoginUser(gate *services.CredentialGate) gin.HandlerFunc {
	return login(gate, "")
}

// LoginAdministrator signs in administrators only.
func LoginAdministrator(gate *services.CredentialGate) gin.HandlerFunc {
	return login(gate, models.RoleAdministrator)
}

// LoginLessor signs in lessors only.
func LoginLessor(gate *services.CredentialGate) gin.HandlerFunc {
	return login(gate, models.RoleLessor)
}

func login(gate *services.CredentialGate, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body loginInput
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		person, err := gate.Authenticate(c.Request.Context(), body.Username, body.Password, requiredRole)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownUser):
				c.JSON(http.StatusNotFound, gin.H{"message": "user does not exist"})
			case errors.Is(err, services.ErrPasswordMismatch):
				c.JSON(http.StatusUnauthorized, gin.H{"message": "incorrect password"})
			case errors.Is(err, services.ErrRoleNotAllowed):
				c.JSON(http.StatusForbidden, gin.H{"message": "not authorized"})
			default:
				logrus.WithError(err).Warn("login lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "login successful", "person": person})
	}
}
