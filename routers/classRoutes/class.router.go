package classRoutes

import (
	controllers "fithub/controllers/class"
	"fithub/middleware"
	"fithub/models"
	validators "fithub/validators/class"

	"github.com/gofiber/fiber/v2"
)

// SetupClassRoutes sets up class catalog and status-workflow routes
func SetupClassRoutes(app *fiber.App) {
	app.Get("/classes", controllers.GetApprovedClasses)
	app.Get("/class/:id", validators.ClassID(), controllers.GetClassByID)
	app.Get("/popular-classes", controllers.GetPopularClasses)
	app.Get("/popular-instructors", controllers.GetPopularInstructors)

	app.Post("/new-class", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.NewClass(), controllers.CreateClass)
	app.Get("/classes/:email", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), controllers.GetClassesByInstructor)
	app.Put("/update-class/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.UpdateClass(), controllers.UpdateClass)

	app.Get("/classes-manage", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.GetAllClasses)
	app.Patch("/class-status/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.ClassStatus(), controllers.SetClassStatus)
}
