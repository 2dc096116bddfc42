package middleware

import (
	"crypto/subtle"

	"tastebuds/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AdminKeyHeader is the request header carrying the admin secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyRequired rejects requests whose X-Admin-Key does not match secret.
// An empty secret rejects everything.
func AdminKeyRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get(AdminKeyHeader)
		if secret == "" || provided == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid admin key"))
		}
		return c.Next()
	}
}
