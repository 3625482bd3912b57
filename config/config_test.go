package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MAX_TEAM_SIZE", "")
	t.Setenv("MIN_ELIGIBLE_SIZE", "")
	t.Setenv("MAX_ELIGIBLE_SIZE", "")
	LoadConfig()

	if AppConfig.MaxTeamSize != 5 {
		t.Errorf("MaxTeamSize = %d, want 5", AppConfig.MaxTeamSize)
	}
	if AppConfig.MinEligibleSize != 2 {
		t.Errorf("MinEligibleSize = %d, want 2", AppConfig.MinEligibleSize)
	}
	if AppConfig.MaxEligibleSize != 5 {
		t.Errorf("MaxEligibleSize = %d, want MaxTeamSize default 5", AppConfig.MaxEligibleSize)
	}
	if AppConfig.CodeLength != 6 {
		t.Errorf("CodeLength = %d, want 6", AppConfig.CodeLength)
	}
	if AppConfig.CodeAttempts != 8 {
		t.Errorf("CodeAttempts = %d, want 8", AppConfig.CodeAttempts)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MAX_TEAM_SIZE", "6")
	t.Setenv("MIN_ELIGIBLE_SIZE", "3")
	t.Setenv("MAX_ELIGIBLE_SIZE", "4")
	LoadConfig()

	if AppConfig.MaxTeamSize != 6 {
		t.Errorf("MaxTeamSize = %d, want 6", AppConfig.MaxTeamSize)
	}
	if AppConfig.MinEligibleSize != 3 {
		t.Errorf("MinEligibleSize = %d, want 3", AppConfig.MinEligibleSize)
	}
	if AppConfig.MaxEligibleSize != 4 {
		t.Errorf("MaxEligibleSize = %d, want 4", AppConfig.MaxEligibleSize)
	}
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("MAX_TEAM_SIZE", "not-a-number")
	LoadConfig()

	if AppConfig.MaxTeamSize != 5 {
		t.Errorf("MaxTeamSize = %d, want default 5 on unparseable env", AppConfig.MaxTeamSize)
	}
}
