// Package middleware provides HTTP middleware components for the dashboard API.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit caps requests per client IP within window.
func RateLimit(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}

// SessionHeader tags every response with the dashboard session ID so clients
// can tell when the server restarted with fresh data.
func SessionHeader(sessionID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Session-ID", sessionID)
		return c.Next()
	}
}
