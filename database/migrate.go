// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"festhub/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Team{},
		&models.TeamMember{},
		&models.EventRegistration{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes beyond what AutoMigrate derives from the
// model tags. The three unique indexes are the correctness backstop for
// concurrent writers; the rest are read-path helpers.
func createIndexes() {
	db := GetDB()
	log.Println("Creating indexes...")

	// Uniqueness the workflow depends on
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_code ON teams(code)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_team_members_pair ON team_members(team_id, user_id)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_event_registrations_pair ON event_registrations(event_id, team_id)")
	// One active membership per user. Rejected rows fall outside the
	// predicate, so past rejections never block a new team.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_team_members_active_user ON team_members(user_id) WHERE status IN ('pending', 'accepted')")

	// Team indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_leader ON teams(leader_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_event ON teams(event_id)")

	// Membership indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_team ON team_members(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_user ON team_members(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_status ON team_members(status)")

	// Registration indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_event_registrations_team ON event_registrations(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_event_registrations_event ON event_registrations(event_id)")

	// Event catalog indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_events_active ON events(is_active)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_events_category ON events(category)")

	log.Println("✅ Indexes created successfully")
}
