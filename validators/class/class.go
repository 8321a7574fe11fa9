package classValidator

import (
	"fithub/middleware"
	"fithub/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func NewClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name            string  `json:"name"`
			InstructorName  string  `json:"instructorName"`
			InstructorEmail string  `json:"instructorEmail"`
			Price           float64 `json:"price"`
			AvailableSeats  int     `json:"availableSeats"`
			VideoLink       string  `json:"videoLink"`
			Description     string  `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Class name is required!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if reqData.AvailableSeats <= 0 {
			errors["availableSeats"] = "Available seats must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNewClass", reqData)
		return c.Next()
	}
}

// ClassStatus validates the admin status transition. A denial without a
// reason is rejected.
func ClassStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classIDStr := strings.TrimSpace(c.Params("id"))
		classID, err := strconv.Atoi(classIDStr)
		if err != nil || classID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != models.ClassStatusApproved && reqData.Status != models.ClassStatusDenied {
			errors["status"] = "Status must be approved or denied!"
		}

		if reqData.Status == models.ClassStatusDenied && strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "Reason is required when denying a class!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("classID", classID)
		c.Locals("validatedClassStatus", reqData)
		return c.Next()
	}
}

func UpdateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classIDStr := strings.TrimSpace(c.Params("id"))
		classID, err := strconv.Atoi(classIDStr)
		if err != nil || classID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
		}

		reqData := new(struct {
			Name           string  `json:"name"`
			Price          float64 `json:"price"`
			AvailableSeats int     `json:"availableSeats"`
			VideoLink      string  `json:"videoLink"`
			Description    string  `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Class name is required!", nil)
		}

		c.Locals("classID", classID)
		c.Locals("validatedUpdateClass", reqData)
		return c.Next()
	}
}

func ClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classIDStr := strings.TrimSpace(c.Params("id"))
		classID, err := strconv.Atoi(classIDStr)
		if err != nil || classID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
		}

		c.Locals("classID", classID)
		return c.Next()
	}
}
