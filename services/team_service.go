// services/team_service.go - Team formation business logic
package services

import (
	"errors"
	"strings"
	"time"

	"festhub/config"
	"festhub/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamService struct {
	db  *gorm.DB
	cfg config.Config
}

func NewTeamService(db *gorm.DB, cfg config.Config) *TeamService {
	return &TeamService{db: db, cfg: cfg}
}

// uniqueViolation reports whether err is a duplicate-key rejection and which
// constraint fired. The constraint name is what lets callers tell a join-code
// collision from a membership race, so the pgx error is inspected directly
// rather than through GORM's translated sentinel, which drops it.
func uniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// ================== TEAM CREATION ==================

// CreateTeam creates a team led by leaderID, optionally scoped to an event.
// The join code is drawn fresh on every attempt; only a duplicate-key
// rejection on the code column triggers another attempt, and the budget is
// bounded so a pathological collision streak fails loudly instead of looping.
func (s *TeamService) CreateTeam(name, leaderID string, eventID *string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 40 {
		return nil, ErrNameInvalid
	}

	if eventID != nil {
		var event models.Event
		if err := s.db.Where("id = ?", *eventID).First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEventNotFound
			}
			return nil, err
		}
		if !event.IsActive {
			return nil, ErrEventNotActive
		}
	}

	// Advisory pre-check; a concurrent writer can still slip past it, so the
	// membership constraint below stays the backstop.
	if err := s.checkActiveScope(leaderID, eventID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < s.cfg.CodeAttempts; attempt++ {
		team := &models.Team{
			Name:     name,
			Code:     GenerateTeamCode(s.cfg.CodeLength),
			LeaderID: leaderID,
			EventID:  eventID,
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(team).Error; err != nil {
				return err
			}
			member := &models.TeamMember{
				TeamID:   team.ID,
				UserID:   leaderID,
				Role:     models.TeamRoleLeader,
				Status:   models.MembershipAccepted,
				JoinedAt: time.Now(),
			}
			return tx.Create(member).Error
		})

		if err == nil {
			return team, nil
		}

		if constraint, dup := uniqueViolation(err); dup {
			if strings.Contains(constraint, "team_members") {
				// Lost a race against another create/join by the same user.
				// Re-read to report the right scope.
				if scopeErr := s.checkActiveScope(leaderID, eventID); scopeErr != nil {
					return nil, scopeErr
				}
				return nil, ErrAlreadyInAnother
			}
			// Code collision; roll a new one.
			continue
		}

		return nil, err
	}

	return nil, ErrCodeSpaceExhausted
}

// ================== LOOKUPS ==================

// GetTeamByID retrieves a team with active members and event preloaded.
func (s *TeamService) GetTeamByID(teamID string) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("id = ?", teamID).
		Preload("Members", "status IN ?",
			[]models.MembershipStatus{models.MembershipPending, models.MembershipAccepted}).
		Preload("Members.User").
		Preload("Event").
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetTeamByCode resolves a team by its join code.
func (s *TeamService) GetTeamByCode(code string) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("code = ?", code).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetUserMemberships returns the caller's pending and accepted memberships
// with team and event detail, newest first.
func (s *TeamService) GetUserMemberships(userID string) ([]models.TeamMember, error) {
	var memberships []models.TeamMember
	err := s.db.Where("user_id = ? AND status IN ?", userID,
		[]models.MembershipStatus{models.MembershipPending, models.MembershipAccepted}).
		Preload("Team").
		Preload("Team.Event").
		Order("joined_at DESC").
		Find(&memberships).Error
	return memberships, err
}

// CountAcceptedMembers counts a team's accepted members.
func (s *TeamService) CountAcceptedMembers(teamID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND status = ?", teamID, models.MembershipAccepted).
		Count(&count).Error
	return count, err
}

// ================== MEMBERSHIP LIFECYCLE ==================

// RequestJoin files a pending join request against the team identified by the
// given code. A user previously rejected from the team re-applies through the
// same call; the (team_id, user_id) row is upserted back to pending.
func (s *TeamService) RequestJoin(rawCode, userID string) (*models.Team, error) {
	code := NormalizeTeamCode(rawCode)
	if len(code) < 4 {
		return nil, ErrCodeInvalid
	}

	team, err := s.GetTeamByCode(code)
	if err != nil {
		return nil, err
	}
	if team.LeaderID == userID {
		return nil, ErrCannotJoinOwn
	}

	if err := s.checkActiveScope(userID, team.EventID); err != nil {
		return nil, err
	}

	accepted, err := s.CountAcceptedMembers(team.ID)
	if err != nil {
		return nil, err
	}
	if accepted >= int64(s.cfg.MaxTeamSize) {
		return nil, ErrTeamFull
	}

	now := time.Now()
	member := &models.TeamMember{
		TeamID:   team.ID,
		UserID:   userID,
		Role:     models.TeamRoleMember,
		Status:   models.MembershipPending,
		JoinedAt: now,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"role":      models.TeamRoleMember,
			"status":    models.MembershipPending,
			"joined_at": now,
		}),
	}).Create(member).Error
	if err != nil {
		// The (team_id, user_id) conflict is absorbed by the upsert, so a
		// duplicate-key rejection here is the active-membership constraint:
		// another writer for the same user won between the pre-check and the
		// insert. Re-read to report the right scope.
		if _, dup := uniqueViolation(err); dup {
			if scopeErr := s.checkActiveScope(userID, team.EventID); scopeErr != nil {
				return nil, scopeErr
			}
			return nil, ErrAlreadyInAnother
		}
		return nil, err
	}

	return team, nil
}

// Approve moves a pending request to accepted. Only the recorded team leader
// may approve.
func (s *TeamService) Approve(teamID, userID, actingLeaderID string) error {
	return s.decideRequest(teamID, userID, actingLeaderID, models.MembershipAccepted)
}

// Reject moves a pending request to rejected. Only the recorded team leader
// may reject.
func (s *TeamService) Reject(teamID, userID, actingLeaderID string) error {
	return s.decideRequest(teamID, userID, actingLeaderID, models.MembershipRejected)
}

func (s *TeamService) decideRequest(teamID, userID, actingLeaderID string, decision models.MembershipStatus) error {
	var team models.Team
	if err := s.db.Where("id = ?", teamID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	if team.LeaderID != actingLeaderID {
		return ErrForbidden
	}

	// Guarded update: only a currently-pending row transitions, so a stale
	// decision against an already-settled request is a reportable no-op.
	res := s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, models.MembershipPending).
		Updates(map[string]interface{}{
			"status":    decision,
			"joined_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotInTeam
	}
	return nil
}

// CancelJoinRequest withdraws the caller's own pending request.
func (s *TeamService) CancelJoinRequest(userID string) error {
	res := s.db.Model(&models.TeamMember{}).
		Where("user_id = ? AND status = ?", userID, models.MembershipPending).
		Updates(map[string]interface{}{
			"status":    models.MembershipRejected,
			"joined_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotInTeam
	}
	return nil
}

// LeaveTeam removes the caller from their accepted team. Leaders cannot
// leave; their membership lives and dies with the team.
func (s *TeamService) LeaveTeam(userID string) error {
	var member models.TeamMember
	err := s.db.Where("user_id = ? AND status = ?", userID, models.MembershipAccepted).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInTeam
		}
		return err
	}
	if member.Role == models.TeamRoleLeader {
		return ErrLeaderCannotLeave
	}

	res := s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ? AND status = ?",
			member.TeamID, userID, models.MembershipAccepted).
		Updates(map[string]interface{}{
			"status":    models.MembershipRejected,
			"joined_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Someone else settled the row between the read and the write.
		return ErrNotInTeam
	}
	return nil
}

// ================== HELPERS ==================

// checkActiveScope enforces the one-active-team rule: a user may hold at most
// one pending or accepted membership per scope, where a scope is either an
// event or "general" (no event). Rejected rows do not count and block
// nothing.
func (s *TeamService) checkActiveScope(userID string, targetEventID *string) error {
	var active []models.TeamMember
	err := s.db.Where("user_id = ? AND status IN ?", userID,
		[]models.MembershipStatus{models.MembershipPending, models.MembershipAccepted}).
		Preload("Team").
		Find(&active).Error
	if err != nil {
		return err
	}

	for _, m := range active {
		if m.Team == nil {
			continue
		}
		if targetEventID != nil && m.Team.EventID != nil && *m.Team.EventID == *targetEventID {
			return ErrAlreadyInEvent
		}
		return ErrAlreadyInAnother
	}
	return nil
}
