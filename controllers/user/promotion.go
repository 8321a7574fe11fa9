package userController

import (
	"fithub/database"
	"fithub/middleware"
	"fithub/models"
	"fithub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// UpdateUserRole promotes the applicant behind an instructor application.
// The application row records the granted role; deleting it is a separate
// admin action.
func UpdateUserRole(c *fiber.Ctx) error {
	appID, ok := c.Locals("applicationID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newRole, ok := c.Locals("requestedRole").(string)
	if !ok || newRole == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Role is required!", nil)
	}

	db := database.Database.Db

	var application models.InstructorApplication
	if err := db.Where("id = ?", appID).First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	var user models.User
	if err := db.Where("email = ?", application.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Applicant user not found!", nil)
	}

	result := db.Model(&models.User{}).Where("email = ?", application.Email).Update("role", newRole)
	if result.Error != nil {
		log.Printf("Error updating user role: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}
	// An unchanged row is indistinguishable from a missing one here
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User role unchanged or not found!", nil)
	}

	if err := db.Model(&application).Update("status", newRole).Error; err != nil {
		log.Printf("Error resolving application %d: %v", application.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve application!", nil)
	}

	go utils.SendRoleUpdateEmail(user.Email, user.Name, newRole)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", nil)
}
