package cartController

import (
	"fithub/database"
	"fithub/middleware"
	"fithub/models"

	"github.com/gofiber/fiber/v2"
)

// Cart rows are always scoped to the authenticated email. Path and query
// params never widen access to another user's rows.

func AddToCart(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID, ok := c.Locals("cartClassID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ? AND status = ?", classID, models.ClassStatusApproved).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found or not approved!", nil)
	}

	// One cart row per (class, user)
	var existing models.CartItem
	if err := db.Where("class_id = ? AND user_email = ?", classID, email).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Class is already in your cart!", nil)
	}

	item := models.CartItem{
		ClassID:   classID,
		UserEmail: email,
	}

	if err := db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add to cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Added to cart successfully!", item)
}

func GetCartItem(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID, ok := c.Locals("cartClassID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var item models.CartItem
	if err := database.Database.Db.Where("class_id = ? AND user_email = ?", classID, email).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item fetched successfully!", item)
}

// GetCart resolves the caller's cart rows to full class documents.
func GetCart(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if c.Params("email") != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own cart!", nil)
	}

	db := database.Database.Db

	var items []models.CartItem
	if err := db.Where("user_email = ?", email).Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	classIDs := make([]uint, len(items))
	for i, item := range items {
		classIDs[i] = item.ClassID
	}

	var classes []models.Class
	if len(classIDs) > 0 {
		if err := db.Where("id IN ?", classIDs).Find(&classes).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart classes!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", classes)
}

func DeleteCartItem(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID, ok := c.Locals("cartClassID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Hard delete: the (class, user) unique index must free up for re-adds
	result := database.Database.Db.Unscoped().Where("class_id = ? AND user_email = ?", classID, email).Delete(&models.CartItem{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete cart item!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item deleted successfully!", nil)
}
