// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all scriptdesk settings. Every field has a default; only
// optional integrations (random.org) are blank out of the box.
type Config struct {
	Port           int      `envconfig:"PORT" default:"8080"`
	KnowledgePath  string   `envconfig:"KNOWLEDGE_PATH" default:"data/cities_landmarks.json"`
	PhraseBankPath string   `envconfig:"PHRASEBANK_PATH" default:"data/phrasebank.toml"`
	ArchivePath    string   `envconfig:"ARCHIVE_PATH" default:"data/scripts.db"`
	CORSOrigins    []string `envconfig:"CORS_ORIGINS"`
	RandomOrgKey   string   `envconfig:"RANDOM_ORG_KEY"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from SCRIPTDESK_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("scriptdesk", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured level name onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
