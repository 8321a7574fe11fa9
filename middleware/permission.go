package middleware

import (
	"fithub/database"
	"fithub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that admits the caller only when their
// stored role satisfies requiredRole. The role is re-read from the users
// table on every request: tokens live up to 24h and a role can change in
// between, so a role claim baked into the token is never trusted.
// The admin role satisfies the instructor gate.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: email not found",
				"data":    nil,
			})
		}

		var user models.User
		err := database.Database.Db.Where("email = ?", email).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"status":  false,
					"message": "You do not have permission to access this resource!",
					"data":    nil,
				})
			}
			// Other DB error
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking permissions!",
				"data":    nil,
			})
		}

		if !roleSatisfies(user.Role, requiredRole) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}

func roleSatisfies(role, requiredRole string) bool {
	switch requiredRole {
	case models.RoleAdmin:
		return role == models.RoleAdmin
	case models.RoleInstructor:
		return role == models.RoleInstructor || role == models.RoleAdmin
	default:
		return false
	}
}
