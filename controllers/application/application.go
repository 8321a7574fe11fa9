package applicationController

import (
	"fithub/database"
	"fithub/middleware"
	"fithub/models"
	"fithub/utils"

	"github.com/gofiber/fiber/v2"
)

func ApplyAsInstructor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedApplication").(*struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Experience string `json:"experience"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// One pending application per applicant
	var existing models.InstructorApplication
	if err := db.Where("email = ? AND status = ?", reqData.Email, models.ApplicationStatusPending).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already have a pending application!", nil)
	}

	application := models.InstructorApplication{
		Name:       reqData.Name,
		Email:      reqData.Email,
		Experience: reqData.Experience,
		Status:     models.ApplicationStatusPending,
	}

	if err := db.Create(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	go utils.NotifyAdminWebhook("instructor-application", map[string]interface{}{
		"applicationId": application.ID,
		"name":          application.Name,
		"email":         application.Email,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

func GetApplications(c *fiber.Ctx) error {
	var applications []models.InstructorApplication
	if err := database.Database.Db.Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

func GetApplicationByEmail(c *fiber.Ctx) error {
	var application models.InstructorApplication
	if err := database.Database.Db.Where("email = ?", c.Params("email")).First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application fetched successfully!", application)
}

func DeleteApplication(c *fiber.Ctx) error {
	appID, ok := c.Locals("applicationID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := database.Database.Db.Where("id = ?", appID).Delete(&models.InstructorApplication{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete application!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application removed successfully!", nil)
}
