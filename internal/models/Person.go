package models

import "gorm.io/gorm"

// Role values accepted for a Person.
const (
	RoleRegular       = "regular"
	RoleAdministrator = "administrator"
	RoleLessor        = "lessor"
)

type Person struct {
	gorm.Model
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
	Role         string `json:"role"` // "regular", "administrator", "lessor"
	Username     string `json:"username"`
	Password     string `json:"-"` // bcrypt hash, never serialized
	Status       string `json:"status"`
}
