package models

import (
	"gorm.io/gorm"
)

// Roles compose hierarchically: admin can do everything an instructor can.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"default:''"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-"`
	Role         string `json:"role" gorm:"default:'student'"`
	Phone        string `json:"phone" gorm:"default:''"`
	About        string `json:"about" gorm:"default:''"`
	ProfileImage string `json:"profileImage" gorm:"default:''"`
	Address      string `json:"address" gorm:"default:''"`
	Gender       string `json:"gender" gorm:"default:''"`
}
