package paymentValidator

import (
	"fithub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreatePaymentIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Price <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Price must be greater than 0!", nil)
		}

		c.Locals("paymentPrice", reqData.Price)
		return c.Next()
	}
}

// PaymentInfo validates the settlement payload. The optional classId query
// param switches cart deletion to single-item mode; it must then reference
// one of the paid classes.
func PaymentInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassesID     []uint  `json:"classesId"`
			UserEmail     string  `json:"userEmail"`
			TransactionID string  `json:"transactionId"`
			Price         float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.ClassesID) == 0 {
			errors["classesId"] = "At least one class is required!"
		}

		if strings.TrimSpace(reqData.UserEmail) == "" {
			errors["userEmail"] = "User email is required!"
		}

		if strings.TrimSpace(reqData.TransactionID) == "" {
			errors["transactionId"] = "Transaction ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPaymentInfo", reqData)
		return c.Next()
	}
}
