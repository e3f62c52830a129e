package middleware

import (
	"crypto/subtle"

	"vastgoed-sync/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequireAPIKey guards job triggers with the shared admin key passed as
// ?apiKey=. An empty configured key rejects everything.
func RequireAPIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		given := c.Query("apiKey")
		if key == "" || given == "" || subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			return response.Forbidden(c, "Unauthorized")
		}
		return c.Next()
	}
}
