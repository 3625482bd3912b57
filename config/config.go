// config/config.go - Team size limits and server settings from environment
package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort string

	// Team formation limits
	MaxTeamSize     int // cap on accepted members per team
	MinEligibleSize int // floor for event registration
	MaxEligibleSize int // ceiling for event registration

	// Join code generation
	CodeLength   int
	CodeAttempts int
}

var AppConfig Config

// LoadConfig reads the runtime configuration from environment variables.
// godotenv is loaded by main before this runs.
func LoadConfig() {
	AppConfig = Config{
		ServerPort:      getEnv("PORT", "3000"),
		MaxTeamSize:     getEnvInt("MAX_TEAM_SIZE", 5),
		MinEligibleSize: getEnvInt("MIN_ELIGIBLE_SIZE", 2),
		MaxEligibleSize: getEnvInt("MAX_ELIGIBLE_SIZE", 0),
		CodeLength:      getEnvInt("TEAM_CODE_LENGTH", 6),
		CodeAttempts:    getEnvInt("TEAM_CODE_ATTEMPTS", 8),
	}

	// Registration ceiling defaults to the team cap.
	if AppConfig.MaxEligibleSize <= 0 {
		AppConfig.MaxEligibleSize = AppConfig.MaxTeamSize
	}
	if AppConfig.MinEligibleSize < 1 {
		AppConfig.MinEligibleSize = 1
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
