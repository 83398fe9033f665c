package middlewares

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := os.Getenv("ADMIN_API_TOKEN")
		if token == "" || c.Get("X-Admin-Token") != token {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_ADMIN_TOKEN",
				"data":    nil,
			})
		}
		return c.Next()
	}
}
