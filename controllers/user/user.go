package userController

import (
	"fithub/config"
	"fithub/database"
	"fithub/middleware"
	"fithub/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNewUser").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		About    string `json:"about"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	newUser := models.User{
		Name:  reqData.Name,
		Email: reqData.Email,
		Phone: reqData.Phone,
		About: reqData.About,
	}

	if reqData.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		newUser.Password = string(hashedPassword)
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", newUser)
}

// SetToken issues a 24h token for the given identity. The role claim is a
// snapshot; authorization always re-reads the stored role.
func SetToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTokenRequest").(*struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Name, reqData.Email, reqData.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return c.JSON(fiber.Map{"token": token})
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

func GetUserByID(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.Where("id = ?", c.Params("id")).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

func GetUserByEmail(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.Where("email = ?", c.Params("email")).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

func GetInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	if err := database.Database.Db.Where("role = ?", models.RoleInstructor).Find(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", instructors)
}

func UpdateUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateUser").(*struct {
		Name  string `json:"name"`
		Role  string `json:"option"`
		Phone string `json:"phone"`
		About string `json:"about"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	updates := map[string]interface{}{
		"name":  reqData.Name,
		"phone": reqData.Phone,
		"about": reqData.About,
	}
	if reqData.Role != "" {
		updates["role"] = reqData.Role
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

func DeleteUser(c *fiber.Ctx) error {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", c.Params("id")).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Delete(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
