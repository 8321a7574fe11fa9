package models

import "gorm.io/gorm"

// CartItem lives between add-to-cart and either deletion or settlement.
// One row per (class, user): a user cannot hold the same class twice.
type CartItem struct {
	gorm.Model
	ClassID   uint   `json:"classId" gorm:"not null;uniqueIndex:idx_cart_class_user"`
	UserEmail string `json:"userEmail" gorm:"not null;uniqueIndex:idx_cart_class_user;index"`
}
