package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestContextWithLogger(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ContextWithLogger(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Fatalf("expected logger from context")
	}

	if got := FromContext(context.Background()); got != nil {
		t.Fatalf("expected nil logger for bare context")
	}

	base := context.Background()
	if got := ContextWithLogger(base, nil); got != base {
		t.Fatalf("expected context to be returned unchanged for nil logger")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, slog.LevelInfo, "json").Info("hello", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["key"] != "value" {
		t.Fatalf("unexpected entry %v", entry)
	}

	buf.Reset()
	logger := New(&buf, slog.LevelWarn, "text")
	logger.Info("suppressed")
	logger.Warn("visible")
	if strings.Contains(buf.String(), "suppressed") || !strings.Contains(buf.String(), "visible") {
		t.Fatalf("unexpected text output %q", buf.String())
	}
}
