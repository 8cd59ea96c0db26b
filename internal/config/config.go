// Package config loads and validates the credentials the tracker needs.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github-tracker/internal/common"
)

// Config holds the validated runtime configuration.
type Config struct {
	Token    string
	Username string
}

// requiredVars are the environment variables that must be present for a run
// to start at all.
var requiredVars = []string{"GITHUB_TOKEN", "GITHUB_USERNAME"}

// Load reads an optional .env file, then validates that every required
// variable is set. All missing variables are reported in a single error so
// the user can fix them in one pass.
func Load() (*Config, error) {
	// A missing .env file is fine; variables may come from the real
	// environment instead.
	_ = godotenv.Load()

	var missing []string
	for _, key := range requiredVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, common.NewError(common.ErrCodeConfig,
			"missing required environment variables: "+strings.Join(missing, ", "))
	}

	return &Config{
		Token:    os.Getenv("GITHUB_TOKEN"),
		Username: os.Getenv("GITHUB_USERNAME"),
	}, nil
}
