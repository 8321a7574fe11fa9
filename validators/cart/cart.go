package cartValidator

import (
	"fithub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID uint `json:"classId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ClassID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Class ID is required!", nil)
		}

		c.Locals("cartClassID", reqData.ClassID)
		return c.Next()
	}
}

func CartItemID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classIDStr := strings.TrimSpace(c.Params("id"))
		classID, err := strconv.Atoi(classIDStr)
		if err != nil || classID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
		}

		c.Locals("cartClassID", uint(classID))
		return c.Next()
	}
}
