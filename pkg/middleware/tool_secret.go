package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ToolSecretHeader carries the shared secret the voice assistant sends with
// every tool call.
const ToolSecretHeader = "X-Vapi-Secret"

// ToolSecretMiddleware rejects requests whose ToolSecretHeader does not match
// secret. An empty secret disables the check.
func ToolSecretMiddleware(secret string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" || c.Method() == fiber.MethodOptions {
			return c.Next()
		}

		got := c.Get(ToolSecretHeader)
		if got == "" {
			logger.Warn("Missing tool secret", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Tool secret required",
			})
		}

		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			logger.Warn("Invalid tool secret", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid tool secret",
			})
		}

		return c.Next()
	}
}
