// Package httperr holds the JSON error envelope shared by every handler.
package httperr

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
	// Fields lists per-field validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}

// RayID returns the request id set by the requestid middleware, or "unknown".
func RayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		return id
	}
	return "unknown"
}

// Write sends an ErrorResponse with the given status.
func Write(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}

// WriteFields sends a 400 ErrorResponse listing the offending fields.
func WriteFields(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
		Fields:  fields,
	})
}
