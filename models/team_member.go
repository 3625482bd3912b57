// models/team_member.go
package models

import "time"

type TeamRole string

const (
	TeamRoleLeader TeamRole = "leader"
	TeamRoleMember TeamRole = "member"
)

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipAccepted MembershipStatus = "accepted"
	MembershipRejected MembershipStatus = "rejected"
)

// TeamMember is one user's relationship with one team. The composite unique
// index on (team_id, user_id) is what makes re-application an upsert instead
// of a duplicate row. A partial unique index on user_id over pending/accepted
// rows (created by the migration runner) backs the one-active-team rule
// against concurrent writers.
type TeamMember struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	TeamID string `gorm:"type:uuid;not null;uniqueIndex:idx_team_members_pair;index" json:"team_id"`
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_team_members_pair;index" json:"user_id"`

	Role   TeamRole         `gorm:"not null;default:'member'" json:"role"`
	Status MembershipStatus `gorm:"not null;default:'pending';index" json:"status"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`

	JoinedAt time.Time `gorm:"not null" json:"joined_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
