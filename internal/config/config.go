// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"go.ngs.io/surf-api/internal/adapter/openmeteo"
)

// Registry backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds the server configuration.
type Config struct {
	Port              string
	DataFile          string
	RegistryBackend   string
	SQLitePath        string
	SeedCSV           string
	ProtectedBeaches  []string
	SelectorCountries []string
	MarineURL         string
	ForecastURL       string
	UpstreamTimeout   time.Duration
	CORSOrigins       []string
	LogFormat         string
}

// LoadDotEnv loads variables from path when the file exists.
// Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8000"),
		DataFile:          getEnv("DATA_FILE", "playas.json"),
		RegistryBackend:   strings.ToLower(getEnv("REGISTRY_BACKEND", BackendJSON)),
		SQLitePath:        getEnv("SQLITE_PATH", "data/playas.db"),
		SeedCSV:           getEnv("SEED_CSV", ""),
		ProtectedBeaches:  splitList(getEnv("PROTECTED_BEACHES", "pantin")),
		SelectorCountries: splitList(getEnv("SELECTOR_COUNTRIES", "Brasil,España")),
		MarineURL:         getEnv("MARINE_API_URL", openmeteo.DefaultMarineURL),
		ForecastURL:       getEnv("FORECAST_API_URL", openmeteo.DefaultForecastURL),
		UpstreamTimeout:   timeout,
		CORSOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	switch cfg.RegistryBackend {
	case BackendJSON, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown REGISTRY_BACKEND %q (expected %s or %s)", cfg.RegistryBackend, BackendJSON, BackendSQLite)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
