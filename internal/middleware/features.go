package middleware

import (
	"tastebuds/internal/featureflags"

	"github.com/gofiber/fiber/v2"
)

// FeatureGate answers 404 unless flag is enabled for the client address, so a
// partial rollout such as "legacy_routes=25%" admits a stable share of clients.
func FeatureGate(flags *featureflags.Manager, flag string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !flags.EnabledFor(flag, c.IP()) {
			return fiber.ErrNotFound
		}
		return c.Next()
	}
}
