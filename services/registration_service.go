// services/registration_service.go - Event registration guard
package services

import (
	"errors"
	"time"

	"festhub/config"
	"festhub/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RegistrationService struct {
	db  *gorm.DB
	cfg config.Config
}

func NewRegistrationService(db *gorm.DB, cfg config.Config) *RegistrationService {
	return &RegistrationService{db: db, cfg: cfg}
}

// RegistrationInput carries the optional submission artifacts recorded
// alongside a registration.
type RegistrationInput struct {
	PresentationURL  string
	ProductPhotosURL string
	Achievements     string
}

// Register records eventID/teamID as registered, provided the team is
// eligible and the caller is an accepted member. Registration is idempotent
// at the storage layer: a second call for the same pair answers
// ALREADY_REGISTERED off the unique index instead of inserting a twin row.
func (s *RegistrationService) Register(eventID, teamID, userID string, input RegistrationInput) (*models.EventRegistration, error) {
	var team models.Team
	if err := s.db.Where("id = ?", teamID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	// A team scoped to one event cannot register for another. General teams
	// (no event scope) may register for any event.
	if team.EventID != nil && *team.EventID != eventID {
		return nil, ErrEventMismatch
	}

	var membership models.TeamMember
	err := s.db.Where("team_id = ? AND user_id = ? AND status = ?",
		teamID, userID, models.MembershipAccepted).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotATeamMember
		}
		return nil, err
	}

	var accepted int64
	err = s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND status = ?", teamID, models.MembershipAccepted).
		Count(&accepted).Error
	if err != nil {
		return nil, err
	}
	if accepted < int64(s.cfg.MinEligibleSize) || accepted > int64(s.cfg.MaxEligibleSize) {
		return nil, ErrTeamNotEligible
	}

	registration := &models.EventRegistration{
		EventID:          eventID,
		TeamID:           teamID,
		UserID:           userID,
		PresentationURL:  input.PresentationURL,
		ProductPhotosURL: input.ProductPhotosURL,
		Achievements:     input.Achievements,
		RegisteredAt:     time.Now(),
	}

	if err := s.db.Create(registration).Error; err != nil {
		if _, dup := uniqueViolation(err); dup {
			return nil, ErrAlreadyRegistered
		}
		logrus.WithFields(logrus.Fields{
			"event_id": eventID,
			"team_id":  teamID,
			"user_id":  userID,
		}).WithError(err).Error("event registration insert failed")
		return nil, err
	}

	return registration, nil
}

// ListTeamRegistrations returns all registrations recorded for a team.
func (s *RegistrationService) ListTeamRegistrations(teamID string) ([]models.EventRegistration, error) {
	var registrations []models.EventRegistration
	err := s.db.Where("team_id = ?", teamID).
		Preload("Event").
		Order("registered_at DESC").
		Find(&registrations).Error
	return registrations, err
}
