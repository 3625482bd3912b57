// models/event_registration.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRegistration binds an eligible team to an event. Rows are immutable
// once created; the (event_id, team_id) unique index makes a repeat insert a
// duplicate-key error rather than a second row.
type EventRegistration struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	EventID string `gorm:"type:uuid;not null;uniqueIndex:idx_event_registrations_pair;index" json:"event_id"`
	TeamID  string `gorm:"type:uuid;not null;uniqueIndex:idx_event_registrations_pair;index" json:"team_id"`
	// Who submitted the registration on the team's behalf.
	UserID string `gorm:"type:uuid;not null" json:"user_id"`

	// Optional submission artifacts.
	PresentationURL  string `json:"presentation_url,omitempty"`
	ProductPhotosURL string `json:"product_photos_url,omitempty"`
	Achievements     string `gorm:"type:text" json:"achievements,omitempty"`

	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Team  *Team  `json:"team,omitempty" gorm:"foreignKey:TeamID"`

	RegisteredAt time.Time `gorm:"not null" json:"registered_at"`
}

func (EventRegistration) TableName() string {
	return "event_registrations"
}

func (r *EventRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
