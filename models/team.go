// models/team.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"not null;size:40" json:"name"`
	Code     string `gorm:"uniqueIndex;not null;size:10" json:"code"`
	LeaderID string `gorm:"type:uuid;not null;index" json:"leader_id"`
	// Nil means a general team not scoped to any event.
	EventID *string `gorm:"type:uuid;index" json:"event_id,omitempty"`

	Leader  *User        `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
	Event   *Event       `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
