package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ryoufit/ryoufit-backend/internal/config"
)

const operatorKey = "operatorID"

// Operator attributes every request to the single configured operator id.
// This is the seam where real authentication would mount; the rest of the
// codebase only ever asks for OperatorID(c).
func Operator(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(operatorKey, cfg.OperatorID)
		return c.Next()
	}
}

// OperatorID returns the operator id attached by the Operator middleware, or
// "" when the middleware did not run.
func OperatorID(c *fiber.Ctx) string {
	id, _ := c.Locals(operatorKey).(string)
	return id
}
