package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

var configKeys = []string{
	"SCHEDULER_TIMEZONE",
	"SCHEDULER_BUSINESS_HOURS",
	"SCHEDULER_ALLOWED_DURATIONS",
	"SCHEDULER_LOG_LEVEL",
	"SCHEDULER_LOG_FORMAT",
	"SCHEDULER_POLICY_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		// Setenv registers restoration of the original value on cleanup.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.Location != time.UTC {
			t.Fatalf("expected UTC location, got %v", cfg.Location)
		}
		if cfg.BusinessStart != 9 || cfg.BusinessEnd != 18 {
			t.Fatalf("unexpected business hours %d-%d", cfg.BusinessStart, cfg.BusinessEnd)
		}
		if !slices.Equal(cfg.AllowedDurations, []int{15, 30, 45, 60, 90, 120}) {
			t.Fatalf("unexpected default durations %v", cfg.AllowedDurations)
		}
		if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
			t.Fatalf("unexpected logging defaults %v %q", cfg.LogLevel, cfg.LogFormat)
		}
	})

	t.Run("parses overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SCHEDULER_TIMEZONE", "Asia/Tokyo")
		t.Setenv("SCHEDULER_BUSINESS_HOURS", "8-20")
		t.Setenv("SCHEDULER_ALLOWED_DURATIONS", "20, 40,60")
		t.Setenv("SCHEDULER_LOG_LEVEL", "debug")
		t.Setenv("SCHEDULER_LOG_FORMAT", "JSON")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.Location.String() != "Asia/Tokyo" {
			t.Fatalf("expected Asia/Tokyo, got %v", cfg.Location)
		}
		if cfg.BusinessStart != 8 || cfg.BusinessEnd != 20 {
			t.Fatalf("unexpected business hours %d-%d", cfg.BusinessStart, cfg.BusinessEnd)
		}
		if !slices.Equal(cfg.AllowedDurations, []int{20, 40, 60}) {
			t.Fatalf("unexpected durations %v", cfg.AllowedDurations)
		}
		if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
			t.Fatalf("unexpected logging config %v %q", cfg.LogLevel, cfg.LogFormat)
		}

		policy := cfg.Policy()
		if policy.BusinessHours.StartHour != 8 || policy.BusinessHours.EndHour != 20 {
			t.Fatalf("unexpected policy hours %+v", policy.BusinessHours)
		}
		if !policy.AllowsDuration(40) || policy.AllowsDuration(30) {
			t.Fatalf("unexpected policy durations %v", policy.AllowedDurations)
		}
	})

	t.Run("reports every invalid value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SCHEDULER_TIMEZONE", "Mars/Olympus")
		t.Setenv("SCHEDULER_BUSINESS_HOURS", "18-9")
		t.Setenv("SCHEDULER_ALLOWED_DURATIONS", "30,abc")

		_, err := Load()
		if err == nil {
			t.Fatalf("expected error for invalid values")
		}
		expected := "invalid environment values: SCHEDULER_TIMEZONE, SCHEDULER_BUSINESS_HOURS, SCHEDULER_ALLOWED_DURATIONS"
		if err.Error() != expected {
			t.Fatalf("unexpected error message: %q", err.Error())
		}
	})

	t.Run("policy file overrides environment", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "policy.yaml")
		doc := "timezone: Europe/Berlin\nbusiness_hours:\n  start: 10\n  end: 16\nallowed_durations: [30, 60]\n"
		if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
			t.Fatalf("failed to write policy file: %v", err)
		}
		t.Setenv("SCHEDULER_BUSINESS_HOURS", "8-20")
		t.Setenv("SCHEDULER_POLICY_FILE", path)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Location.String() != "Europe/Berlin" {
			t.Fatalf("expected Europe/Berlin, got %v", cfg.Location)
		}
		if cfg.BusinessStart != 10 || cfg.BusinessEnd != 16 {
			t.Fatalf("unexpected business hours %d-%d", cfg.BusinessStart, cfg.BusinessEnd)
		}
		if !slices.Equal(cfg.AllowedDurations, []int{30, 60}) {
			t.Fatalf("unexpected durations %v", cfg.AllowedDurations)
		}
		if cfg.PolicyFile != path {
			t.Fatalf("expected policy file path to be recorded")
		}
	})

	t.Run("rejects invalid policy file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "policy.yaml")
		if err := os.WriteFile(path, []byte("business_hours:\n  start: 19\n  end: 9\n"), 0o600); err != nil {
			t.Fatalf("failed to write policy file: %v", err)
		}
		t.Setenv("SCHEDULER_POLICY_FILE", path)

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "business hours") {
			t.Fatalf("expected business hours error, got %v", err)
		}
	})

	t.Run("reports missing policy file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SCHEDULER_POLICY_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "read policy file") {
			t.Fatalf("expected read error, got %v", err)
		}
	})
}
