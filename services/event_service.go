// services/event_service.go - Read-only event catalog access
package services

import (
	"errors"

	"festhub/models"

	"gorm.io/gorm"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// ListEvents returns the catalog, optionally filtered to active events.
func (s *EventService) ListEvents(activeOnly bool) ([]models.Event, error) {
	var events []models.Event
	query := s.db.Order("created_at ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&events).Error
	return events, err
}

// GetEvent retrieves one event by ID.
func (s *EventService) GetEvent(eventID string) (*models.Event, error) {
	var event models.Event
	if err := s.db.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}
