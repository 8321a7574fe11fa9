package userValidator

import (
	"fithub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func NewUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Phone    string `json:"phone"`
			About    string `json:"about"`
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
		} else if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Invalid email address!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNewUser", reqData)
		return c.Next()
	}
}

func SetToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Role  string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Email) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
		}

		c.Locals("validatedTokenRequest", reqData)
		return c.Next()
	}
}

// UpdateUserRole validates the promotion request. The :id path param is the
// instructor application ID, not the user ID.
func UpdateUserRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		appIDStr := strings.TrimSpace(c.Params("id"))
		if appIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Application ID is required!", nil)
		}

		appID, err := strconv.Atoi(appIDStr)
		if err != nil || appID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application ID!", nil)
		}

		reqData := new(struct {
			Role string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Role) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Role is required!", nil)
		}

		c.Locals("applicationID", appID)
		c.Locals("requestedRole", reqData.Role)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("id"))
		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		reqData := new(struct {
			Name  string `json:"name"`
			Role  string `json:"option"`
			Phone string `json:"phone"`
			About string `json:"about"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("userID", userID)
		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}
