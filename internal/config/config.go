package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/fadedpez/cardindex/internal/logging"
	"github.com/fadedpez/cardindex/pkg/types"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Logging
	LogLevel logging.Level

	// Recognition pipeline
	MinConfidence float64

	// Deck shuffling, 0 means seed from the clock
	ShuffleSeed int64

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads the configuration from environment variables after
// loading the given .env files. Missing files are ignored.
func LoadFile(filenames ...string) (*Config, error) {
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			// Only return error if file exists but couldn't be loaded
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, types.WrapError(types.ErrInvalidConfig, fmt.Sprintf("error loading %s", name), err)
			}
		}
	}

	level, err := logging.ParseLevel(getEnvWithDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	minConfidence, err := strconv.ParseFloat(getEnvWithDefault("MIN_CONFIDENCE", "0.5"), 64)
	if err != nil {
		return nil, types.WrapError(types.ErrInvalidConfig, "MIN_CONFIDENCE must be a number", err)
	}

	seed, err := strconv.ParseInt(getEnvWithDefault("SHUFFLE_SEED", "0"), 10, 64)
	if err != nil {
		return nil, types.WrapError(types.ErrInvalidConfig, "SHUFFLE_SEED must be an integer", err)
	}

	cfg := &Config{
		LogLevel:      level,
		MinConfidence: minConfidence,
		ShuffleSeed:   seed,
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks if all configuration values are in range
func (c *Config) validate() error {
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return types.NewCardErrorf(types.ErrInvalidConfig, "MIN_CONFIDENCE must be between 0 and 1, got %v", c.MinConfidence)
	}
	if c.Environment != "development" && c.Environment != "production" {
		return types.NewCardErrorf(types.ErrInvalidConfig, "ENVIRONMENT must be development or production, got %q", c.Environment)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Logger returns a logger writing at the configured level
func (c *Config) Logger() *logging.Logger {
	return logging.NewLoggerWithWriter(os.Stderr, c.LogLevel)
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
