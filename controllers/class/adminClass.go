package classController

import (
	"fithub/database"
	"fithub/middleware"
	"fithub/models"
	"fithub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SetClassStatus moves a pending class to approved or denied. Only those
// two targets exist; the validator has already required a reason for
// denials.
func SetClassStatus(c *fiber.Ctx) error {
	classID, ok := c.Locals("classID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedClassStatus").(*struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ?", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	updates := map[string]interface{}{
		"status": reqData.Status,
		"reason": reqData.Reason,
	}

	if err := db.Model(&class).Updates(updates).Error; err != nil {
		log.Printf("Error updating class status: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class status!", nil)
	}

	go utils.SendClassStatusEmail(class.InstructorEmail, class.Name, reqData.Status, reqData.Reason)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class status updated successfully!", class)
}
