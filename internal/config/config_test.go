package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("unexpected default port %d", cfg.Server.Port)
	}
	if cfg.Strips.ExpirySeconds != 10 || cfg.Debounce() != 500*time.Millisecond {
		t.Fatalf("unexpected strip defaults: %+v", cfg.Strips)
	}
	if !cfg.CancelOnExit() {
		t.Fatal("cancel_on_exit must default to true")
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
strips:
  expiry_seconds: 30
  debounce_ms: 250
  cancel_on_exit: false
tracking:
  watch_airport: KSEA
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port override lost: %d", cfg.Server.Port)
	}
	if cfg.Strips.ExpirySeconds != 30 || cfg.Debounce() != 250*time.Millisecond {
		t.Fatalf("strip overrides lost: %+v", cfg.Strips)
	}
	if cfg.CancelOnExit() {
		t.Fatal("cancel_on_exit=false not honored")
	}
	if cfg.Tracking.WatchAirport != "KSEA" {
		t.Fatalf("watch airport override lost: %q", cfg.Tracking.WatchAirport)
	}
	// Untouched keys keep their defaults.
	if cfg.Tracking.BaseURL != "https://api.adsb.lol" {
		t.Fatalf("default base url lost: %q", cfg.Tracking.BaseURL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("PORT", "7070")
	t.Setenv("ADSB_BASE_URL", "http://localhost:9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("env port override lost: %d", cfg.Server.Port)
	}
	if cfg.Tracking.BaseURL != "http://localhost:9999" {
		t.Fatalf("env base url override lost: %q", cfg.Tracking.BaseURL)
	}
}

func TestInvalidValuesRejected(t *testing.T) {
	path := writeConfig(t, "strips:\n  expiry_seconds: -5\n")
	if _, err := Load(path); err == nil {
		t.Fatal("negative expiry must be rejected")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file must error")
	}
}
