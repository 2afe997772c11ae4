// Package config loads application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/skirmishforge/warband-api/internal/errors"
)

// Config holds runtime configuration for the warband service
type Config struct {
	// RedisAddr is the host:port of the roster store.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	// RedisTLS enables TLS for managed Redis deployments.
	RedisTLS bool `env:"REDIS_TLS" envDefault:"false"`

	// RulesetDir overrides the embedded ruleset with JSON documents
	// from a directory. Empty means use the embedded data.
	RulesetDir string `env:"RULESET_DIR"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() (*Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}

// SlogLevel maps the configured log level onto slog's levels.
// Unrecognized values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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
