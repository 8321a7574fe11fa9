package adminRoutes

import (
	controllers "fithub/controllers/admin"
	"fithub/middleware"
	"fithub/models"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin dashboard routes
func SetupAdminRoutes(app *fiber.App) {
	app.Get("/admin-stats", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.GetAdminStats)
}
