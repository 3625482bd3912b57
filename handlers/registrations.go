// handlers/registrations.go - Event registration HTTP handlers
package handlers

import (
	"festhub/middleware"
	"festhub/services"
	"festhub/utils"

	"github.com/gofiber/fiber/v2"
)

// RegisterForEvent registers an eligible team for an event
// POST /api/events/register
func RegisterForEvent(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req struct {
		EventID          string `json:"event_id" validate:"required,uuid"`
		TeamID           string `json:"team_id" validate:"required,uuid"`
		PresentationURL  string `json:"presentation_url"`
		ProductPhotosURL string `json:"product_photos_url"`
		Achievements     string `json:"achievements"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	registration, err := registrationService.Register(req.EventID, req.TeamID, userID, services.RegistrationInput{
		PresentationURL:  req.PresentationURL,
		ProductPhotosURL: req.ProductPhotosURL,
		Achievements:     req.Achievements,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":      true,
		"message":      "Team registered for event",
		"registration": registration,
	})
}

// GetTeamRegistrations lists the registrations recorded for a team
// GET /api/events/registrations?teamId=
func GetTeamRegistrations(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return err
	}

	teamID := c.Query("teamId")
	if teamID == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Missing teamId parameter",
		})
	}

	registrations, err := registrationService.ListTeamRegistrations(teamID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch registrations",
		})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"registrations": registrations,
		"count":         len(registrations),
	})
}
