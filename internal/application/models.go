package application

import (
	"strings"
	"time"
)

// MeetingStatus records the lifecycle state of a booking.
type MeetingStatus string

const (
	// MeetingStatusScheduled is assigned to newly accepted requests.
	MeetingStatusScheduled MeetingStatus = "scheduled"
	// MeetingStatusActive marks a booking that is currently confirmed.
	MeetingStatusActive MeetingStatus = "active"
	// MeetingStatusCanceled marks a booking that no longer occupies its slot.
	MeetingStatusCanceled MeetingStatus = "canceled"
	// MeetingStatusCompleted marks a booking that has already taken place.
	MeetingStatusCompleted MeetingStatus = "completed"
)

// IsCanceled reports whether the status frees the booking's slot.
// Matching is case-insensitive and accepts the "cancelled" spelling.
func (s MeetingStatus) IsCanceled() bool {
	value := strings.TrimSpace(string(s))
	return strings.EqualFold(value, string(MeetingStatusCanceled)) || strings.EqualFold(value, "cancelled")
}

// MeetingRequest is a validated interview or meeting booking.
type MeetingRequest struct {
	ID              string
	Title           string
	Start           time.Time
	DurationMinutes int
	Participants    []string
	MeetingLink     *string
	Status          MeetingStatus
}

// End returns the exclusive end instant of the meeting.
func (m MeetingRequest) End() time.Time {
	return m.Start.Add(time.Duration(m.DurationMinutes) * time.Minute)
}

func (m MeetingRequest) clone() MeetingRequest {
	out := m
	if m.Participants != nil {
		out.Participants = append([]string(nil), m.Participants...)
	}
	out.MeetingLink = cloneString(m.MeetingLink)
	return out
}

// MeetingInput captures raw form values supplied by the caller.
type MeetingInput struct {
	ID    string
	Title string
	// Date holds a calendar date ("2006-01-02") or a combined timestamp when Time is empty.
	Date string
	Time string
	// Duration may be any integer or float kind, a json.Number, or a decimal string.
	Duration     any
	Participants []string
	MeetingLink  *string
	Status       MeetingStatus
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
