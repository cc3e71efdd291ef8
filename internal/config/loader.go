package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/example/interview-scheduler/internal/application"
	"github.com/example/interview-scheduler/internal/logging"
)

// Config captures environment driven configuration values for the scheduling checks.
type Config struct {
	Location         *time.Location
	BusinessStart    int
	BusinessEnd      int
	AllowedDurations []int
	LogLevel         slog.Level
	LogFormat        string
	PolicyFile       string
}

// policyFile is the YAML document referenced by SCHEDULER_POLICY_FILE.
type policyFile struct {
	Timezone         string `yaml:"timezone"`
	BusinessHours    *hours `yaml:"business_hours"`
	AllowedDurations []int  `yaml:"allowed_durations"`
}

type hours struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Load parses configuration values from the current process environment.
//
// Defaults mirror application.DefaultPolicy. When SCHEDULER_POLICY_FILE is
// set, values from that YAML file override the environment.
func Load() (Config, error) {
	defaults := application.DefaultPolicy()
	cfg := Config{
		Location:         defaults.Location,
		BusinessStart:    defaults.BusinessHours.StartHour,
		BusinessEnd:      defaults.BusinessHours.EndHour,
		AllowedDurations: defaults.AllowedDurations,
		LogLevel:         slog.LevelInfo,
		LogFormat:        "text",
	}

	invalid := make([]string, 0, 2)

	if tz := strings.TrimSpace(os.Getenv("SCHEDULER_TIMEZONE")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_TIMEZONE")
		} else {
			cfg.Location = loc
		}
	}

	if value := strings.TrimSpace(os.Getenv("SCHEDULER_BUSINESS_HOURS")); value != "" {
		start, end, err := parseHours(value)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_BUSINESS_HOURS")
		} else {
			cfg.BusinessStart, cfg.BusinessEnd = start, end
		}
	}

	if value := strings.TrimSpace(os.Getenv("SCHEDULER_ALLOWED_DURATIONS")); value != "" {
		durations, err := parseDurations(value)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_ALLOWED_DURATIONS")
		} else {
			cfg.AllowedDurations = durations
		}
	}

	if value := strings.TrimSpace(os.Getenv("SCHEDULER_LOG_LEVEL")); value != "" {
		level, err := logging.ParseLevel(value)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_LOG_LEVEL")
		} else {
			cfg.LogLevel = level
		}
	}

	if value := strings.TrimSpace(os.Getenv("SCHEDULER_LOG_FORMAT")); value != "" {
		format := strings.ToLower(value)
		if format != "text" && format != "json" {
			invalid = append(invalid, "SCHEDULER_LOG_FORMAT")
		} else {
			cfg.LogFormat = format
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}

	if path := strings.TrimSpace(os.Getenv("SCHEDULER_POLICY_FILE")); path != "" {
		cfg.PolicyFile = path
		if err := cfg.applyPolicyFile(path); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// Policy converts the configuration into scheduling rules.
func (c Config) Policy() application.Policy {
	return application.Policy{
		AllowedDurations: slices.Clone(c.AllowedDurations),
		BusinessHours: application.BusinessHours{
			StartHour: c.BusinessStart,
			EndHour:   c.BusinessEnd,
		},
		Location: c.Location,
	}
}

func (c *Config) applyPolicyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read policy file: %w", err)
	}

	var doc policyFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse policy file %s: %w", path, err)
	}

	if tz := strings.TrimSpace(doc.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("policy file %s: unknown timezone %q", path, tz)
		}
		c.Location = loc
	}
	if doc.BusinessHours != nil {
		if !validHours(doc.BusinessHours.Start, doc.BusinessHours.End) {
			return fmt.Errorf("policy file %s: business hours must satisfy 0 <= start < end <= 24", path)
		}
		c.BusinessStart, c.BusinessEnd = doc.BusinessHours.Start, doc.BusinessHours.End
	}
	if len(doc.AllowedDurations) > 0 {
		for _, d := range doc.AllowedDurations {
			if d <= 0 {
				return fmt.Errorf("policy file %s: allowed durations must be positive", path)
			}
		}
		c.AllowedDurations = slices.Clone(doc.AllowedDurations)
	}
	return nil
}

func parseHours(value string) (int, int, error) {
	startText, endText, ok := strings.Cut(value, "-")
	if !ok {
		return 0, 0, fmt.Errorf("expected START-END, got %q", value)
	}
	start, err := strconv.Atoi(strings.TrimSpace(startText))
	if err != nil {
		return 0, 0, err
	}
	end, err := strconv.Atoi(strings.TrimSpace(endText))
	if err != nil {
		return 0, 0, err
	}
	if !validHours(start, end) {
		return 0, 0, fmt.Errorf("hours out of range: %q", value)
	}
	return start, end, nil
}

func validHours(start, end int) bool {
	return start >= 0 && end <= 24 && start < end
}

func parseDurations(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	durations := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		minutes, err := strconv.Atoi(part)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid duration %q", part)
		}
		durations = append(durations, minutes)
	}
	if len(durations) == 0 {
		return nil, fmt.Errorf("no durations in %q", value)
	}
	return durations, nil
}
