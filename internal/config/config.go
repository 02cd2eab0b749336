// Package config provides application configuration management.
// It loads settings from environment variables with a .env file fallback
// and validates them before the server starts.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// HTTP server timeouts. All handlers are CPU-bound over in-memory
// catalogs, so the read and write timeouts mostly guard slow clients.
const (
	HTTPReadTimeout  = 10 * time.Second
	HTTPWriteTimeout = 30 * time.Second
	HTTPIdleTimeout  = 120 * time.Second
)

// Config holds all application configuration.
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Catalog Configuration
	// CatalogDir overrides the embedded catalogs with JSON files from a
	// directory. Empty means use the embedded data.
	CatalogDir string

	// AgencyName is the signature on every generated offer message.
	AgencyName string

	// Metrics Authentication
	MetricsUsername string // Username for /metrics Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics Basic Auth (empty = no auth)

	// Error Tracking (Better Stack via the Sentry SDK)
	BetterStackToken string
	BetterStackHost  string
	Environment      string
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first, then reads from env vars.
func Load() (*Config, error) {
	// Ignore error if the .env file doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),

		CatalogDir: getEnv("CATALOG_DIR", ""),
		AgencyName: getEnv("AGENCY_NAME", "WBE Education Consultancy"),

		MetricsUsername: getEnv("METRICS_USERNAME", "prometheus"),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),

		BetterStackToken: getEnv("BETTERSTACK_ERRORS_TOKEN", ""),
		BetterStackHost:  getEnv("BETTERSTACK_ERRORS_HOST", "errors.betterstack.com"),
		Environment:      getEnv("ENVIRONMENT", "production"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks if required configuration values are set.
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.AgencyName == "" {
		errs = append(errs, errors.New("AGENCY_NAME is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.ShutdownTimeout))
	}
	if c.CatalogDir != "" {
		if info, err := os.Stat(c.CatalogDir); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Errorf("CATALOG_DIR is not a readable directory: %s", c.CatalogDir))
		}
	}
	if c.BetterStackToken != "" && c.BetterStackHost == "" {
		errs = append(errs, errors.New("BETTERSTACK_ERRORS_HOST is required when a token is set"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// getEnv retrieves an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv retrieves a duration environment variable with a fallback.
// Accepts Go duration strings ("30s", "5m") or plain seconds ("30").
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
