package middleware

import (
	contextPkg "ChatbotGolang/pkg/context"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
)

const RequestIDKey = contextPkg.RequestIDHeader

// NewRequestIDMiddleware honors an inbound X-Request-ID and otherwise assigns
// a fresh ULID. The id is echoed back on the response.
func NewRequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if requestID == "" {
			requestID = ulid.Make().String()
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
