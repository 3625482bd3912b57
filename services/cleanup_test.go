package services

import (
	"testing"
	"time"

	"festhub/models"
)

func TestPruneRejectedMemberships(t *testing.T) {
	db := openTestDB(t)
	cfg := testConfig()
	teams := NewTeamService(db, cfg)
	cleanup := NewCleanupService(db)

	leader := seedUser(t, db)
	team, err := teams.CreateTeam("Night Owls", leader.ID, nil)
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	// A recently rejected row and a stale one.
	recent := seedUser(t, db)
	stale := seedUser(t, db)
	rows := []models.TeamMember{
		{TeamID: team.ID, UserID: recent.ID, Role: models.TeamRoleMember,
			Status: models.MembershipRejected, JoinedAt: time.Now().UTC()},
		{TeamID: team.ID, UserID: stale.ID, Role: models.TeamRoleMember,
			Status: models.MembershipRejected, JoinedAt: time.Now().UTC().Add(-rejectedRetention - time.Hour)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed membership: %v", err)
		}
	}

	if err := cleanup.PruneRejectedMemberships(); err != nil {
		t.Fatalf("PruneRejectedMemberships: %v", err)
	}

	var remaining []models.TeamMember
	if err := db.Where("team_id = ?", team.ID).Find(&remaining).Error; err != nil {
		t.Fatalf("list memberships: %v", err)
	}
	// Leader's accepted row plus the recent rejection survive.
	if len(remaining) != 2 {
		t.Fatalf("remaining rows = %d, want 2", len(remaining))
	}
	for _, m := range remaining {
		if m.UserID == stale.ID {
			t.Errorf("stale rejected row was not pruned")
		}
	}
}
