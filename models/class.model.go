package models

import "gorm.io/gorm"

// Class status machine: pending (initial) -> approved | denied, admin only.
// There is no transition back to pending.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

type Class struct {
	gorm.Model
	Name            string  `json:"name"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" gorm:"index;not null"`
	Price           float64 `json:"price"`
	AvailableSeats  int     `json:"availableSeats"`
	TotalEnrolled   int     `json:"totalEnrolled" gorm:"default:0"`
	VideoLink       string  `json:"videoLink"`
	Description     string  `json:"description"`
	Status          string  `json:"status" gorm:"default:'pending'"`
	Reason          string  `json:"reason"`
}
