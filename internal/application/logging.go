package application

import (
	"context"
	"log/slog"

	"github.com/example/interview-scheduler/internal/logging"
)

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

func serviceLogger(ctx context.Context, base *slog.Logger, serviceName, operation string, attrs ...any) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = base
	}
	if logger == nil {
		logger = slog.Default()
	}

	pairs := []any{"service", serviceName}
	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}
	if len(attrs) > 0 {
		pairs = append(pairs, attrs...)
	}
	return logger.With(pairs...)
}

// ErrorKind maps taxonomy and foreign errors to a stable logging label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	tagged, ok := AsError(err)
	if !ok {
		return "unexpected"
	}
	switch tagged.Kind {
	case KindValidation, KindSchedulingConflict, KindPermissionDenied, KindNetwork:
		return string(tagged.Kind)
	default:
		return string(KindUnknown)
	}
}
