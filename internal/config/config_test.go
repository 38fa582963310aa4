package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.ngs.io/surf-api/internal/adapter/openmeteo"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATA_FILE", "REGISTRY_BACKEND", "SQLITE_PATH", "SEED_CSV", "PROTECTED_BEACHES",
		"SELECTOR_COUNTRIES", "MARINE_API_URL", "FORECAST_API_URL", "UPSTREAM_TIMEOUT",
		"CORS_ALLOWED_ORIGINS", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Port = %s, want 8000", cfg.Port)
	}
	if cfg.DataFile != "playas.json" {
		t.Errorf("DataFile = %s, want playas.json", cfg.DataFile)
	}
	if cfg.RegistryBackend != BackendJSON {
		t.Errorf("RegistryBackend = %s, want %s", cfg.RegistryBackend, BackendJSON)
	}
	if !reflect.DeepEqual(cfg.ProtectedBeaches, []string{"pantin"}) {
		t.Errorf("ProtectedBeaches = %v, want [pantin]", cfg.ProtectedBeaches)
	}
	if !reflect.DeepEqual(cfg.SelectorCountries, []string{"Brasil", "España"}) {
		t.Errorf("SelectorCountries = %v", cfg.SelectorCountries)
	}
	if cfg.MarineURL != openmeteo.DefaultMarineURL || cfg.ForecastURL != openmeteo.DefaultForecastURL {
		t.Errorf("Unexpected provider URLs: %s %s", cfg.MarineURL, cfg.ForecastURL)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 15s", cfg.UpstreamTimeout)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("CORSOrigins = %v, want empty", cfg.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("REGISTRY_BACKEND", "SQLite")
	t.Setenv("PROTECTED_BEACHES", "pantin, razo ,,")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %s, want 3000", cfg.Port)
	}
	if cfg.RegistryBackend != BackendSQLite {
		t.Errorf("RegistryBackend = %s, want sqlite", cfg.RegistryBackend)
	}
	if !reflect.DeepEqual(cfg.ProtectedBeaches, []string{"pantin", "razo"}) {
		t.Errorf("ProtectedBeaches = %v", cfg.ProtectedBeaches)
	}
	if cfg.UpstreamTimeout != 3*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 3s", cfg.UpstreamTimeout)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid timeout")
	}

	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("REGISTRY_BACKEND", "postgres")
	if _, err := Load(); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("Missing file should be ignored: %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SURF_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("SURF_TEST_DOTENV", "")
	if err := os.Unsetenv("SURF_TEST_DOTENV"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SURF_TEST_DOTENV"); got != "loaded" {
		t.Errorf("SURF_TEST_DOTENV = %q, want loaded", got)
	}
}
