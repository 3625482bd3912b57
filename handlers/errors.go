// handlers/errors.go - Service error to HTTP response mapping
package handlers

import (
	"errors"
	"log"

	"festhub/services"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError turns a typed business error into its contractual
// status and code. Anything else is a 500 with no internal detail leaked.
func respondServiceError(c *fiber.Ctx, err error) error {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		return c.Status(svcErr.Status).JSON(fiber.Map{
			"success": false,
			"code":    svcErr.Code,
			"error":   svcErr.Message,
		})
	}

	log.Printf("❌ Unexpected error: %v", err)
	return c.Status(500).JSON(fiber.Map{
		"success": false,
		"error":   "Internal server error",
	})
}
