package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/example/interview-scheduler/internal/logging"
)

func TestDefaultLogger(t *testing.T) {
	t.Parallel()

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	if got := defaultLogger(custom); got != custom {
		t.Fatalf("expected custom logger to be returned")
	}

	if got := defaultLogger(nil); got != slog.Default() {
		t.Fatalf("expected default logger when none provided")
	}
}

func TestServiceLoggerPrefersContextLogger(t *testing.T) {
	t.Parallel()

	var base, scoped bytes.Buffer
	baseLogger := slog.New(slog.NewTextHandler(&base, nil))
	ctx := logging.ContextWithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)))

	serviceLogger(ctx, baseLogger, "meeting", "schedule", "meeting_id", "7").Info("hello")

	if base.Len() != 0 {
		t.Fatalf("expected base logger to be bypassed, got %q", base.String())
	}
	out := scoped.String()
	for _, fragment := range []string{"service=meeting", "operation=schedule", "meeting_id=7"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in %q", fragment, out)
		}
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{NewValidationError(FieldStart, MsgMeetingInPast), "validation"},
		{fmt.Errorf("wrap: %w", NewConflictError(nil)), "scheduling_conflict"},
		{NewPermissionDeniedError(""), "permission_denied"},
		{NewNetworkError(""), "network_error"},
		{NewUnknownError("x"), "unknown"},
		{&Error{Kind: "other"}, "unknown"},
		{errors.New("plain"), "unexpected"},
	}
	for _, tc := range cases {
		if got := ErrorKind(tc.err); got != tc.want {
			t.Fatalf("ErrorKind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
