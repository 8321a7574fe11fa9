package models

import "gorm.io/gorm"

const (
	ApplicationStatusPending = "pending"
)

// InstructorApplication is a pending promotion request. On approval the
// status is set to the granted role; the row is deleted by the admin
// cleanup endpoint afterwards.
type InstructorApplication struct {
	gorm.Model
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"index;not null"`
	Experience string `json:"experience"`
	Status     string `json:"status" gorm:"default:'pending'"`
}
