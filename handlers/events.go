// handlers/events.go - Event catalog HTTP handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetEvents lists the event catalog
// GET /api/events?activeOnly=true
func GetEvents(c *fiber.Ctx) error {
	activeOnly := c.Query("activeOnly", "true") != "false"

	events, err := eventService.ListEvents(activeOnly)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve events",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
		"count":   len(events),
	})
}

// GetEvent retrieves one event
// GET /api/events/:id
func GetEvent(c *fiber.Ctx) error {
	event, err := eventService.GetEvent(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}
