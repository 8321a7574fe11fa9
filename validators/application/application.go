package applicationValidator

import (
	"fithub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func ApplyInstructor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name       string `json:"name"`
			Email      string `json:"email"`
			Experience string `json:"experience"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}

func ApplicationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		appIDStr := strings.TrimSpace(c.Params("id"))
		appID, err := strconv.Atoi(appIDStr)
		if err != nil || appID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application ID!", nil)
		}

		c.Locals("applicationID", appID)
		return c.Next()
	}
}
