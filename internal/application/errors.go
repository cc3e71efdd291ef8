package application

import "errors"

// Kind discriminates the failure categories reported by the scheduling core.
type Kind string

const (
	// KindValidation marks malformed or out-of-policy input.
	KindValidation Kind = "validation"
	// KindSchedulingConflict marks a collision with an existing booking.
	KindSchedulingConflict Kind = "scheduling_conflict"
	// KindPermissionDenied is raised by surrounding layers and preserved through formatting.
	KindPermissionDenied Kind = "permission_denied"
	// KindNetwork is raised by surrounding layers and preserved through formatting.
	KindNetwork Kind = "network_error"
	// KindUnknown is the catch-all category.
	KindUnknown Kind = "unknown"
)

// Kind sentinels match any *Error of the same kind via errors.Is.
var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrSchedulingConflict = &Error{Kind: KindSchedulingConflict}
	ErrPermissionDenied   = &Error{Kind: KindPermissionDenied}
	ErrNetwork            = &Error{Kind: KindNetwork}
	ErrUnknown            = &Error{Kind: KindUnknown}
)

// Messages reported by the validators and the conflict detector.
const (
	MsgInvalidDateTime      = "Invalid date or time format"
	MsgMeetingInPast        = "Meeting time must be in the future"
	MsgOutsideBusinessHours = "Meetings must be scheduled between 9 AM and 6 PM"
	MsgInvalidDuration      = "Invalid meeting duration"
	MsgParticipantsRequired = "At least one participant is required"
	MsgInvalidEmails        = "Invalid email format for some participants"
	MsgInvalidMeetingLink   = "Invalid meeting link format"
	MsgSchedulingConflict   = "This time slot conflicts with existing meetings"
)

// ErrorDetails carries the kind specific payload of an Error.
type ErrorDetails struct {
	// Field names the input that failed validation.
	Field         string
	InvalidEmails []string
	Conflicts     []MeetingRequest
}

// Error is the tagged error returned by every validator and the conflict detector.
type Error struct {
	Kind    Kind
	Message string
	Details ErrorDetails
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

// Is reports whether target is a kind sentinel matching the receiver's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// NewValidationError returns a validation failure for the given field.
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: ErrorDetails{Field: field}}
}

// NewConflictError returns a scheduling conflict listing every colliding booking.
func NewConflictError(conflicts []MeetingRequest) *Error {
	return &Error{
		Kind:    KindSchedulingConflict,
		Message: MsgSchedulingConflict,
		Details: ErrorDetails{Conflicts: conflicts},
	}
}

// NewPermissionDeniedError returns a permission failure for use by callers.
func NewPermissionDeniedError(message string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

// NewNetworkError returns a network failure for use by callers.
func NewNetworkError(message string) *Error {
	return &Error{Kind: KindNetwork, Message: message}
}

// NewUnknownError returns an uncategorised failure.
func NewUnknownError(message string) *Error {
	return &Error{Kind: KindUnknown, Message: message}
}

// AsError extracts the tagged error from err when present.
func AsError(err error) (*Error, bool) {
	var tagged *Error
	if !errors.As(err, &tagged) || tagged == nil {
		return nil, false
	}
	return tagged, true
}
