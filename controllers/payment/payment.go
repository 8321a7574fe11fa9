package paymentController

import (
	"fithub/config"
	"fithub/database"
	"fithub/middleware"
	"fithub/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"
)

// CreatePaymentIntent asks Stripe for a charge intent and hands the client
// secret back. The charge itself completes out-of-band; settlement happens
// later through SavePaymentInfo.
func CreatePaymentIntent(c *fiber.Ctx) error {
	price, ok := c.Locals("paymentPrice").(float64)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	stripe.Key = config.AppConfig.StripeKey
	if stripe.Key == "" {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment gateway not configured!", nil)
	}

	amount := int64(price * 100) // dollars to cents

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.IdempotencyKey = stripe.String(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	return c.JSON(fiber.Map{"clientSecret": pi.ClientSecret})
}

// GetPaymentHistory lists the caller's receipts, newest first.
func GetPaymentHistory(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if c.Params("email") != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own payment history!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.Where("user_email = ?", email).Order("created_at DESC").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment history fetched successfully!", payments)
}

func GetPaymentHistoryLength(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if c.Params("email") != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own payment history!", nil)
	}

	var total int64
	if err := database.Database.Db.Model(&models.Payment{}).Where("user_email = ?", email).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count payments!", nil)
	}

	return c.JSON(fiber.Map{"total": total})
}

// GetEnrolledClasses returns each enrolled class joined with its instructor.
func GetEnrolledClasses(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if c.Params("email") != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own enrollments!", nil)
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_email = ?", email).Preload("Classes").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]fiber.Map, 0)
	for _, enrollment := range enrollments {
		for _, class := range enrollment.Classes {
			var instructor models.User
			db.Where("email = ?", class.InstructorEmail).First(&instructor)
			result = append(result, fiber.Map{
				"class":      class,
				"instructor": instructor,
			})
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled classes fetched successfully!", result)
}
