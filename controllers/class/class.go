package classController

import (
	"fithub/database"
	"fithub/middleware"
	"fithub/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

func CreateClass(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	reqData, ok := c.Locals("validatedNewClass").(*struct {
		Name            string  `json:"name"`
		InstructorName  string  `json:"instructorName"`
		InstructorEmail string  `json:"instructorEmail"`
		Price           float64 `json:"price"`
		AvailableSeats  int     `json:"availableSeats"`
		VideoLink       string  `json:"videoLink"`
		Description     string  `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// A class is always authored under the caller's own identity
	instructorEmail := reqData.InstructorEmail
	if instructorEmail == "" {
		instructorEmail = email
	}

	newClass := models.Class{
		Name:            reqData.Name,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: instructorEmail,
		Price:           reqData.Price,
		AvailableSeats:  reqData.AvailableSeats,
		VideoLink:       reqData.VideoLink,
		Description:     reqData.Description,
		Status:          models.ClassStatusPending,
	}

	if err := database.Database.Db.Create(&newClass).Error; err != nil {
		log.Printf("Error saving class to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class created successfully!", newClass)
}

// GetApprovedClasses is the public listing: approved classes only.
func GetApprovedClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Where("status = ?", models.ClassStatusApproved).Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// GetClassesByInstructor lists the caller's own classes regardless of status.
func GetClassesByInstructor(c *fiber.Ctx) error {
	email := c.Params("email")

	var classes []models.Class
	if err := database.Database.Db.Where("instructor_email = ?", email).Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

func GetClassByID(c *fiber.Ctx) error {
	classID, ok := c.Locals("classID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var class models.Class
	if err := database.Database.Db.Where("id = ?", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class fetched successfully!", class)
}

// GetAllClasses is the admin management view, every status included.
func GetAllClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

func UpdateClass(c *fiber.Ctx) error {
	classID, ok := c.Locals("classID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateClass").(*struct {
		Name           string  `json:"name"`
		Price          float64 `json:"price"`
		AvailableSeats int     `json:"availableSeats"`
		VideoLink      string  `json:"videoLink"`
		Description    string  `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ?", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	// Instructors may edit only their own classes; admins may edit any
	email, _ := c.Locals("email").(string)
	var caller models.User
	if err := db.Where("email = ?", email).First(&caller).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
	if caller.Role != models.RoleAdmin && class.InstructorEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own classes!", nil)
	}

	updates := map[string]interface{}{
		"name":            reqData.Name,
		"price":           reqData.Price,
		"available_seats": reqData.AvailableSeats,
		"video_link":      reqData.VideoLink,
		"description":     reqData.Description,
	}

	if err := db.Model(&class).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully!", class)
}

// GetPopularClasses returns the top 6 classes by cumulative enrollment.
func GetPopularClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Order("total_enrolled DESC").Limit(6).Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular classes fetched successfully!", classes)
}

// GetPopularInstructors returns the top 6 instructors by enrollment summed
// across their classes.
func GetPopularInstructors(c *fiber.Ctx) error {
	type instructorRow struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		ProfileImage  string `json:"profileImage"`
		About         string `json:"about"`
		TotalEnrolled int    `json:"totalEnrolled"`
	}

	var rows []instructorRow
	err := database.Database.Db.Model(&models.Class{}).
		Select("users.name AS name, users.email AS email, users.profile_image AS profile_image, users.about AS about, SUM(classes.total_enrolled) AS total_enrolled").
		Joins("JOIN users ON users.email = classes.instructor_email").
		Where("users.role = ?", models.RoleInstructor).
		Group("users.id, users.name, users.email, users.profile_image, users.about").
		Order("total_enrolled DESC").
		Limit(6).
		Scan(&rows).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular instructors fetched successfully!", rows)
}
