package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// Everything has a default so the service runs out of the box; only the
// Slack and Turso settings are optional features that stay disabled when
// their variables are unset.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg := Config{
		Port:          getEnv("PORT", "5000"),
		DBName:        getEnv("DB_NAME", "squadcheck.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
		Provider: ProviderConfig{
			BaseURL:     getEnv("ROSTER_API_BASE", "https://data-sheets-updates.onrender.com"),
			CacheDir:    getEnv("CACHE_DIR", "cache"),
			CacheMaxAge: getEnvDuration("CACHE_MAX_AGE", 24*time.Hour),
			MaxRetries:  getEnvInt("MAX_RETRIES", 3),
		},
		Pacing: PacingConfig{
			ClubMatchDelay: getEnvDuration("CLUB_MATCH_DELAY", time.Second),
			PauseAfter:     getEnvInt("PAUSE_AFTER", 10),
			PauseDuration:  getEnvDuration("PAUSE_DURATION", 30*time.Second),
		},
		Slack: SlackConfig{
			Token:     os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn("Invalid integer environment variable, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn("Invalid duration environment variable, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}
