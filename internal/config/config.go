package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName    string
	AppEnv     string
	AppVersion string

	// Database
	DBPath string

	// Observability (optional, opt-in crash reporting)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return &Config{
		AppName:    envString("APP_NAME", "MoodTrack"),
		AppEnv:     envString("APP_ENV", "production"),
		AppVersion: envString("APP_VERSION", "1.0.0"),

		DBPath: envString("MOODTRACK_DB", defaultDBPath()),

		SentryDSN: envString("SENTRY_DSN", ""),
	}
}

// defaultDBPath places the journal under the user config directory, falling
// back to a local data directory when the platform offers none.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("data", "journal.db")
	}
	return filepath.Join(dir, "moodtrack", "journal.db")
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
