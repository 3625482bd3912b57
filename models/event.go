// models/event.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is the catalog entry teams register against. Rows are administered
// outside this service and consumed read-only by the team workflow.
type Event struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"not null;size:100" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:100" json:"slug"`
	Category    string `gorm:"size:50;index" json:"category"`
	Description string `gorm:"type:text" json:"description"`

	MaxScore        int        `gorm:"default:100" json:"max_score"`
	MaxParticipants *int       `json:"max_participants,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	Location        string     `json:"location"`
	ImageURL        string     `json:"image_url"`

	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
