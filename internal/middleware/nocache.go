package middleware

import "github.com/gofiber/fiber/v2"

// NoCache tells intermediaries not to cache API responses. The frontend
// reads back just-written values on the next navigation, so any cached
// response shows stale data.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate, max-age=0")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
