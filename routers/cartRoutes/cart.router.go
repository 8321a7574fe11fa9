package cartRoutes

import (
	controllers "fithub/controllers/cart"
	"fithub/middleware"
	validators "fithub/validators/cart"

	"github.com/gofiber/fiber/v2"
)

// SetupCartRoutes sets up owner-scoped cart routes
func SetupCartRoutes(app *fiber.App) {
	app.Post("/add-to-cart", middleware.JWTMiddleware, validators.AddToCart(), controllers.AddToCart)
	app.Get("/cart-item/:id", middleware.JWTMiddleware, validators.CartItemID(), controllers.GetCartItem)
	app.Get("/cart/:email", middleware.JWTMiddleware, controllers.GetCart)
	app.Delete("/delete-cart-item/:id", middleware.JWTMiddleware, validators.CartItemID(), controllers.DeleteCartItem)
}
