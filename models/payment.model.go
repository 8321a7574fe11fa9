package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment is an append-only receipt. The unique TransactionID doubles as the
// settlement idempotency marker: a retried settlement finds the existing row
// and is refused before any state changes.
type Payment struct {
	gorm.Model
	UserEmail     string         `json:"userEmail" gorm:"index;not null"`
	TransactionID string         `json:"transactionId" gorm:"uniqueIndex;not null"`
	Price         float64        `json:"price"`
	ClassIDs      datatypes.JSON `json:"classesId"`
}
