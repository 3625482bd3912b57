package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"festhub/config"
	"festhub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Service tests run against a throwaway Postgres pointed to by
// TEST_DATABASE_URL and are skipped when it is not set, since the unique
// constraint behavior under test is the database's, not a mock's.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database-backed test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Team{},
		&models.TeamMember{},
		&models.EventRegistration{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// AutoMigrate cannot express the partial index; created the same way the
	// migration runner does.
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_team_members_active_user ON team_members(user_id) WHERE status IN ('pending', 'accepted')").Error; err != nil {
		t.Fatalf("failed to create active-membership index: %v", err)
	}

	// Each test starts from empty tables.
	if err := db.Exec("TRUNCATE event_registrations, team_members, teams, events, users CASCADE").Error; err != nil {
		t.Fatalf("failed to truncate test tables: %v", err)
	}

	return db
}

func testConfig() config.Config {
	return config.Config{
		MaxTeamSize:     5,
		MinEligibleSize: 2,
		MaxEligibleSize: 5,
		CodeLength:      6,
		CodeAttempts:    8,
	}
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	userSeq++
	user := &models.User{
		Email:     fmt.Sprintf("user%d-%d@test.local", userSeq, time.Now().UnixNano()),
		Password:  "x",
		FirstName: fmt.Sprintf("User%d", userSeq),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedEvent(t *testing.T, db *gorm.DB, active bool) *models.Event {
	t.Helper()
	event := &models.Event{
		Name:     fmt.Sprintf("Event %d", time.Now().UnixNano()),
		Slug:     fmt.Sprintf("event-%d", time.Now().UnixNano()),
		Category: "technical",
		IsActive: active,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}
	return event
}
