package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Field names recorded in ErrorDetails.Field.
const (
	FieldStart        = "start"
	FieldDuration     = "duration"
	FieldParticipants = "participants"
	FieldMeetingLink  = "meeting_link"
)

var (
	errInvalidTimestamp = errors.New("application: invalid meeting timestamp")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// localLayouts are interpreted in the policy location.
	localLayouts = []string{
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05.999999999",
	}
)

// Validator applies a scheduling Policy to meeting input. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	policy Policy
}

// NewValidator returns a validator for the supplied policy. Unset policy
// fields fall back to DefaultPolicy.
func NewValidator(policy Policy) *Validator {
	return &Validator{policy: policy.normalized()}
}

var defaultValidator = NewValidator(DefaultPolicy())

// Policy returns a copy of the rules applied by the validator.
func (v *Validator) Policy() Policy {
	return v.policy.normalized()
}

// ParseMeetingStart combines a date and a time of day into an instant. When
// clock is empty, date may hold a combined timestamp. Values without an
// explicit offset are interpreted in loc, or UTC when loc is nil.
func ParseMeetingStart(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" {
		return time.Time{}, errInvalidTimestamp
	}

	value := date
	if clock != "" {
		value = date + "T" + clock
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	for _, layout := range localLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errInvalidTimestamp, value)
}

// ValidateMeetingTime checks a date and time against the default policy.
func ValidateMeetingTime(date, clock string, now time.Time) error {
	return defaultValidator.ValidateMeetingTime(date, clock, now)
}

// ValidateMeetingTime checks that the requested start parses, lies strictly
// after now, and begins within business hours.
func (v *Validator) ValidateMeetingTime(date, clock string, now time.Time) error {
	_, err := v.validateStart(date, clock, now)
	return err
}

func (v *Validator) validateStart(date, clock string, now time.Time) (time.Time, error) {
	start, err := ParseMeetingStart(date, clock, v.policy.Location)
	if err != nil {
		return time.Time{}, NewValidationError(FieldStart, MsgInvalidDateTime)
	}
	if !start.After(now) {
		return time.Time{}, NewValidationError(FieldStart, MsgMeetingInPast)
	}
	if !v.policy.BusinessHours.Contains(start.In(v.policy.Location).Hour()) {
		return time.Time{}, NewValidationError(FieldStart, v.policy.BusinessHours.message())
	}
	return start, nil
}

// ValidateMeetingDuration checks a duration against the default policy.
func ValidateMeetingDuration(value any) error {
	return defaultValidator.ValidateMeetingDuration(value)
}

// ValidateMeetingDuration checks that value coerces to one of the allowed lengths.
func (v *Validator) ValidateMeetingDuration(value any) error {
	_, err := v.validateDuration(value)
	return err
}

func (v *Validator) validateDuration(value any) (int, error) {
	minutes, ok := CoerceDuration(value)
	if !ok || !v.policy.AllowsDuration(minutes) {
		return 0, NewValidationError(FieldDuration, MsgInvalidDuration)
	}
	return minutes, nil
}

// CoerceDuration converts numeric and decimal string values to whole minutes.
// Fractional values are rejected rather than rounded.
func CoerceDuration(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return intFromInt64(v)
	case uint:
		return intFromUint64(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return intFromUint64(uint64(v))
	case uint64:
		return intFromUint64(v)
	case float32:
		return intFromFloat(float64(v))
	case float64:
		return intFromFloat(v)
	case json.Number:
		return intFromString(v.String())
	case string:
		return intFromString(v)
	default:
		return 0, false
	}
}

func intFromInt64(v int64) (int, bool) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false
	}
	return int(v), true
}

func intFromUint64(v uint64) (int, bool) {
	if v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

func intFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func intFromString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return intFromInt64(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return intFromFloat(f)
}

// ValidateParticipants checks a participant list against the default policy.
func ValidateParticipants(participants []string) error {
	return defaultValidator.ValidateParticipants(participants)
}

// ValidateParticipants requires at least one participant and reports every
// entry that looks like an email address but is malformed. Entries without
// an "@" are treated as non-email identifiers.
func (v *Validator) ValidateParticipants(participants []string) error {
	if len(participants) == 0 {
		return NewValidationError(FieldParticipants, MsgParticipantsRequired)
	}

	var invalid []string
	for _, participant := range participants {
		if !strings.Contains(participant, "@") {
			continue
		}
		if !emailPattern.MatchString(participant) || strings.IndexFunc(participant, unicode.IsSpace) >= 0 {
			invalid = append(invalid, participant)
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	vErr := NewValidationError(FieldParticipants, MsgInvalidEmails)
	vErr.Details.InvalidEmails = invalid
	return vErr
}

// ValidateMeetingLink checks an optional meeting link against the default policy.
func ValidateMeetingLink(link *string) error {
	return defaultValidator.ValidateMeetingLink(link)
}

// ValidateMeetingLink accepts an absent or blank link and otherwise requires
// an absolute URI. No scheme allow-list is applied.
func (v *Validator) ValidateMeetingLink(link *string) error {
	if link == nil {
		return nil
	}
	raw := strings.TrimSpace(*link)
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return NewValidationError(FieldMeetingLink, MsgInvalidMeetingLink)
	}
	if parsed.Opaque == "" && parsed.Host == "" && parsed.Path == "" {
		return NewValidationError(FieldMeetingLink, MsgInvalidMeetingLink)
	}
	return nil
}

func (b BusinessHours) message() string {
	return fmt.Sprintf("Meetings must be scheduled between %s and %s", formatHour(b.StartHour), formatHour(b.EndHour))
}

func formatHour(hour int) string {
	suffix := "AM"
	if hour%24 >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d %s", display, suffix)
}
