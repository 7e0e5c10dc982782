package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port          string
	DBName        string
	MigrationsDir string
	Provider      ProviderConfig
	Pacing        PacingConfig
	Slack         SlackConfig
	Turso         TursoConfig
}

// ProviderConfig configures the roster provider client and its cache.
type ProviderConfig struct {
	BaseURL     string
	CacheDir    string
	CacheMaxAge time.Duration
	MaxRetries  int
}

// PacingConfig spaces out provider traffic during report assembly.
type PacingConfig struct {
	ClubMatchDelay time.Duration
	PauseAfter     int
	PauseDuration  time.Duration
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
