package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const meetingServiceName = "meeting"

// MeetingService runs the validation pipeline and conflict detection for
// interview requests. It keeps no state between calls; persistence of
// accepted requests is left to the caller.
type MeetingService struct {
	validator   *Validator
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewMeetingService wires dependencies for meeting scheduling checks.
func NewMeetingService(policy Policy, idGenerator func() string, now func() time.Time) *MeetingService {
	return NewMeetingServiceWithLogger(policy, idGenerator, now, nil)
}

// NewMeetingServiceWithLogger wires dependencies and a base logger.
func NewMeetingServiceWithLogger(policy Policy, idGenerator func() string, now func() time.Time, logger *slog.Logger) *MeetingService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &MeetingService{
		validator:   NewValidator(policy),
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

// Policy returns the rules applied by the service.
func (s *MeetingService) Policy() Policy {
	return s.validator.Policy()
}

// Schedule validates input and checks it against existing bookings. The
// returned request carries a generated ID when the input had none.
func (s *MeetingService) Schedule(ctx context.Context, input MeetingInput, existing []MeetingRequest) (MeetingRequest, error) {
	if s == nil {
		return MeetingRequest{}, fmt.Errorf("MeetingService is nil")
	}
	logger := serviceLogger(ctx, s.logger, meetingServiceName, "schedule", "meeting_id", input.ID)

	request, err := s.validator.ValidateMeetingRequest(input, s.now())
	if err != nil {
		s.logRejection(ctx, logger, err)
		return MeetingRequest{}, err
	}
	if request.ID == "" {
		request.ID = s.idGenerator()
		logger = logger.With("assigned_id", request.ID)
	}

	if err := CheckSchedulingConflicts(request, existing); err != nil {
		s.logRejection(ctx, logger, err)
		return MeetingRequest{}, err
	}

	logger.InfoContext(ctx, "meeting request accepted",
		"start", request.Start,
		"duration_minutes", request.DurationMinutes,
		"participants", len(request.Participants),
		"existing", len(existing),
	)
	return request, nil
}

// Check re-runs conflict detection for an already validated request, for
// example when the caller's booking set changed after validation.
func (s *MeetingService) Check(ctx context.Context, candidate MeetingRequest, existing []MeetingRequest) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	logger := serviceLogger(ctx, s.logger, meetingServiceName, "check", "meeting_id", candidate.ID)

	if err := CheckSchedulingConflicts(candidate, existing); err != nil {
		s.logRejection(ctx, logger, err)
		return err
	}
	logger.DebugContext(ctx, "no scheduling conflicts", "existing", len(existing))
	return nil
}

func (s *MeetingService) logRejection(ctx context.Context, logger *slog.Logger, err error) {
	attrs := []any{"error_kind", ErrorKind(err), "error", err}
	if tagged, ok := AsError(err); ok {
		if tagged.Details.Field != "" {
			attrs = append(attrs, "field", tagged.Details.Field)
		}
		if len(tagged.Details.InvalidEmails) > 0 {
			attrs = append(attrs, "invalid_emails", len(tagged.Details.InvalidEmails))
		}
		if ids := ConflictIDs(err); len(ids) > 0 {
			attrs = append(attrs, "conflicts", ids)
		}
	}
	logger.WarnContext(ctx, "meeting request rejected", attrs...)
}
