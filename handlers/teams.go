// handlers/teams.go - Team formation HTTP handlers
package handlers

import (
	"time"

	"festhub/config"
	"festhub/database"
	"festhub/middleware"
	"festhub/models"
	"festhub/services"
	"festhub/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	teamService         *services.TeamService
	registrationService *services.RegistrationService
	eventService        *services.EventService
)

// InitHandlers wires the services against the shared database handle.
func InitHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitHandlers")
	}
	teamService = services.NewTeamService(db, config.AppConfig)
	registrationService = services.NewRegistrationService(db, config.AppConfig)
	eventService = services.NewEventService(db)
}

// ================== TEAM LIFECYCLE ENDPOINTS ==================

// CreateTeam creates a new team with the caller as leader
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req struct {
		Name    string  `json:"name" validate:"required,min=3,max=40"`
		EventID *string `json:"event_id" validate:"omitempty,uuid"`
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
			"code":    "NAME_INVALID",
			"error":   err.Error(),
		})
	}

	team, err := teamService.CreateTeam(req.Name, userID, req.EventID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Team created successfully",
		"team":    team,
	})
}

// JoinTeam files a join request against a team identified by its code
// POST /api/teams/join
func JoinTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req struct {
		Code string `json:"code" validate:"required"`
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
			"code":    "CODE_INVALID",
			"error":   err.Error(),
		})
	}

	team, err := teamService.RequestJoin(req.Code, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Join request submitted",
		"team":    team,
	})
}

// CancelJoinRequest withdraws the caller's pending join request
// POST /api/teams/cancel
func CancelJoinRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	if err := teamService.CancelJoinRequest(userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Join request cancelled",
	})
}

// LeaveTeam removes the caller from their accepted team
// POST /api/teams/leave
func LeaveTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	if err := teamService.LeaveTeam(userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully left team",
	})
}

// ApproveMember accepts a pending join request (leader only)
// POST /api/teams/:id/approve
func ApproveMember(c *fiber.Ctx) error {
	return decideMember(c, true)
}

// RejectMember declines a pending join request (leader only)
// POST /api/teams/:id/reject
func RejectMember(c *fiber.Ctx) error {
	return decideMember(c, false)
}

func decideMember(c *fiber.Ctx, approve bool) error {
	leaderID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID := c.Params("id")

	var req struct {
		UserID string `json:"user_id" validate:"required,uuid"`
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

	if approve {
		err = teamService.Approve(teamID, req.UserID, leaderID)
	} else {
		err = teamService.Reject(teamID, req.UserID, leaderID)
	}
	if err != nil {
		return respondServiceError(c, err)
	}

	message := "Member approved"
	if !approve {
		message = "Request rejected"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// ================== TEAM READ ENDPOINTS ==================

// GetTeam retrieves a team with its active members
// GET /api/teams/:id
func GetTeam(c *fiber.Ctx) error {
	team, err := teamService.GetTeamByID(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	var accepted, pending []models.TeamMember
	for _, m := range team.Members {
		switch m.Status {
		case models.MembershipAccepted:
			accepted = append(accepted, m)
		case models.MembershipPending:
			pending = append(pending, m)
		}
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"team":             team,
		"accepted_members": accepted,
		"pending_members":  pending,
		"max_size":         config.AppConfig.MaxTeamSize,
		"min_eligible":     config.AppConfig.MinEligibleSize,
	})
}

// GetMyTeams retrieves the caller's active memberships with team, event and
// registration detail
// GET /api/teams/mine
func GetMyTeams(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	memberships, err := teamService.GetUserMemberships(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve teams",
		})
	}

	type membershipView struct {
		TeamID        string                     `json:"team_id"`
		Role          models.TeamRole            `json:"role"`
		Status        models.MembershipStatus    `json:"status"`
		JoinedAt      time.Time                  `json:"joined_at"`
		Team          *models.Team               `json:"team"`
		Registrations []models.EventRegistration `json:"registrations"`
	}

	views := make([]membershipView, 0, len(memberships))
	for _, m := range memberships {
		regs, err := registrationService.ListTeamRegistrations(m.TeamID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to retrieve registrations",
			})
		}
		views = append(views, membershipView{
			TeamID:        m.TeamID,
			Role:          m.Role,
			Status:        m.Status,
			JoinedAt:      m.JoinedAt,
			Team:          m.Team,
			Registrations: regs,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"teams":   views,
		"count":   len(views),
	})
}
