package userRoutes

import (
	controllers "fithub/controllers/user"
	"fithub/middleware"
	"fithub/models"
	validators "fithub/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up user, token and role-promotion routes
func SetupUserRoutes(app *fiber.App) {
	app.Post("/new-user", validators.NewUser(), controllers.CreateUser)
	app.Post("/api/set-token", validators.SetToken(), controllers.SetToken)

	app.Get("/users", controllers.GetAllUsers)
	app.Get("/users/:id", controllers.GetUserByID)
	app.Get("/user/:email", middleware.JWTMiddleware, controllers.GetUserByEmail)
	app.Get("/instructors", controllers.GetInstructors)

	app.Put("/update-user/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateUser(), controllers.UpdateUser)
	app.Delete("/delete-user/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteUser)

	// Promotion flow: :id is the instructor application ID
	app.Patch("/update-user-role/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateUserRole(), controllers.UpdateUserRole)
}
