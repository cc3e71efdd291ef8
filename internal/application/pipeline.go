package application

import (
	"strings"
	"time"
)

// ValidateMeetingRequest runs the default-policy pipeline.
func ValidateMeetingRequest(input MeetingInput, now time.Time) (MeetingRequest, error) {
	return defaultValidator.ValidateMeetingRequest(input, now)
}

// ValidateMeetingRequest validates input in the fixed order time, duration,
// participants, link and returns the first failure. On success it returns the
// normalised request ready for conflict detection.
func (v *Validator) ValidateMeetingRequest(input MeetingInput, now time.Time) (MeetingRequest, error) {
	start, err := v.validateStart(input.Date, input.Time, now)
	if err != nil {
		return MeetingRequest{}, err
	}

	minutes, err := v.validateDuration(input.Duration)
	if err != nil {
		return MeetingRequest{}, err
	}

	if err := v.ValidateParticipants(input.Participants); err != nil {
		return MeetingRequest{}, err
	}

	if err := v.ValidateMeetingLink(input.MeetingLink); err != nil {
		return MeetingRequest{}, err
	}

	status := MeetingStatus(strings.TrimSpace(string(input.Status)))
	if status == "" {
		status = MeetingStatusScheduled
	}

	var link *string
	if input.MeetingLink != nil && strings.TrimSpace(*input.MeetingLink) != "" {
		trimmed := strings.TrimSpace(*input.MeetingLink)
		link = &trimmed
	}

	return MeetingRequest{
		ID:              input.ID,
		Title:           strings.TrimSpace(input.Title),
		Start:           start,
		DurationMinutes: minutes,
		Participants:    append([]string(nil), input.Participants...),
		MeetingLink:     link,
		Status:          status,
	}, nil
}
