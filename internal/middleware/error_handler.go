package middleware

import (
	"vastgoed-sync/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the global error handler. Returns the standard error format.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := response.StatusFor(err)
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		message = e.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("trace_id", GetTraceID(c)).Str("path", c.Path()).Msg("Unhandled error")
	}
	return response.Error(c, message, code, nil)
}
