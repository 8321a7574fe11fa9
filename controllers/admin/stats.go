package adminController

import (
	"fithub/database"
	"fithub/middleware"
	"fithub/models"

	"github.com/gofiber/fiber/v2"
)

// GetAdminStats returns the dashboard counters.
func GetAdminStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var approvedClasses, pendingClasses, instructors, totalClasses, totalEnrolled int64

	if err := db.Model(&models.Class{}).Where("status = ?", models.ClassStatusApproved).Count(&approvedClasses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}
	if err := db.Model(&models.Class{}).Where("status = ?", models.ClassStatusPending).Count(&pendingClasses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleInstructor).Count(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}
	if err := db.Model(&models.Class{}).Count(&totalClasses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}
	if err := db.Model(&models.Enrollment{}).Count(&totalEnrolled).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"approvedClasses": approvedClasses,
		"pendingClasses":  pendingClasses,
		"instructors":     instructors,
		"totalClasses":    totalClasses,
		"totalEnrolled":   totalEnrolled,
	})
}
