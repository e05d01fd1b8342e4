// Package config loads the board's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvDevelopment represents the development environment.
	EnvDevelopment = "development"
	// EnvProduction represents the production environment.
	EnvProduction = "production"
)

// Config holds all application configuration.
type Config struct {
	Env string `envconfig:"ENV" default:"production"`

	// Logging settings. The TUI owns the terminal, so logs only go to
	// LogFile; an empty LogFile discards them.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`

	// Interaction settings
	FastScrollFactor float64 `envconfig:"FAST_SCROLL_FACTOR" default:"4"`
	ReleaseOnBlur    bool    `envconfig:"RELEASE_ON_BLUR" default:"false"`
	TickCount        int     `envconfig:"TICK_COUNT" default:"11"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional)
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("error loading .env file", "error", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks settings envconfig cannot express.
func (c *Config) Validate() error {
	if c.FastScrollFactor < 1 {
		return fmt.Errorf("FAST_SCROLL_FACTOR must be at least 1, got %v", c.FastScrollFactor)
	}

	if c.TickCount < 0 {
		return fmt.Errorf("TICK_COUNT must not be negative, got %d", c.TickCount)
	}

	return nil
}
