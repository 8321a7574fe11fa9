package applicationRoutes

import (
	controllers "fithub/controllers/application"
	"fithub/middleware"
	"fithub/models"
	validators "fithub/validators/application"

	"github.com/gofiber/fiber/v2"
)

// SetupApplicationRoutes sets up instructor application routes
func SetupApplicationRoutes(app *fiber.App) {
	app.Post("/as-instructor", validators.ApplyInstructor(), controllers.ApplyAsInstructor)
	app.Get("/applied-instructors/:email", middleware.JWTMiddleware, controllers.GetApplicationByEmail)

	app.Get("/applied-instructors", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.GetApplications)
	app.Delete("/delete-applied-instructor/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.ApplicationID(), controllers.DeleteApplication)
}
