package models

import "gorm.io/gorm"

type Enrollment struct {
	gorm.Model
	UserEmail     string  `json:"userEmail" gorm:"index;not null"`
	TransactionID string  `json:"transactionId" gorm:"index;not null"`
	Classes       []Class `json:"classes" gorm:"many2many:enrollment_classes"`
}
