package paymentRoutes

import (
	controllers "fithub/controllers/payment"
	"fithub/middleware"
	validators "fithub/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the payment gateway, the settlement engine
// and the enrollment/payment read routes
func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", middleware.JWTMiddleware, validators.CreatePaymentIntent(), controllers.CreatePaymentIntent)
	app.Post("/payment-info", middleware.JWTMiddleware, validators.PaymentInfo(), controllers.SavePaymentInfo)

	app.Get("/payment-history/:email", middleware.JWTMiddleware, controllers.GetPaymentHistory)
	app.Get("/payment-history-length/:email", middleware.JWTMiddleware, controllers.GetPaymentHistoryLength)
	app.Get("/enrolled-classes/:email", middleware.JWTMiddleware, controllers.GetEnrolledClasses)
}
