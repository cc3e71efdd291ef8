package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/interview-scheduler/internal/application"
)

var meetingCounter uint64

// referenceTime is a Monday morning before business hours, in UTC.
var referenceTime = time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical "now" used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// MeetingOption configures a generated meeting.
type MeetingOption func(*application.MeetingRequest)

// NewMeeting returns a 30 minute scheduled meeting at 10:00 on the reference
// day with one participant, adjusted by opts.
func NewMeeting(opts ...MeetingOption) application.MeetingRequest {
	idx := atomic.AddUint64(&meetingCounter, 1)
	meeting := application.MeetingRequest{
		ID:              fmt.Sprintf("meeting-%03d", idx),
		Title:           fmt.Sprintf("Interview %03d", idx),
		Start:           time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Participants:    []string{fmt.Sprintf("candidate-%03d@example.com", idx)},
		Status:          application.MeetingStatusScheduled,
	}
	for _, opt := range opts {
		opt(&meeting)
	}
	return meeting
}

// WithMeetingID overrides the generated ID.
func WithMeetingID(id string) MeetingOption {
	return func(m *application.MeetingRequest) {
		m.ID = id
	}
}

// WithStart overrides the start instant.
func WithStart(start time.Time) MeetingOption {
	return func(m *application.MeetingRequest) {
		m.Start = start
	}
}

// WithDuration overrides the meeting length in minutes.
func WithDuration(minutes int) MeetingOption {
	return func(m *application.MeetingRequest) {
		m.DurationMinutes = minutes
	}
}

// WithStatus overrides the booking status.
func WithStatus(status application.MeetingStatus) MeetingOption {
	return func(m *application.MeetingRequest) {
		m.Status = status
	}
}

// WithParticipants replaces the participant list.
func WithParticipants(participants ...string) MeetingOption {
	return func(m *application.MeetingRequest) {
		m.Participants = append([]string(nil), participants...)
	}
}

// WithMeetingLink sets the meeting link.
func WithMeetingLink(link string) MeetingOption {
	return func(m *application.MeetingRequest) {
		m.MeetingLink = &link
	}
}

// InputOption configures a generated MeetingInput.
type InputOption func(*application.MeetingInput)

// NewMeetingInput returns form input that passes the default pipeline when
// validated at ReferenceTime: 2024-01-01 10:30 UTC, 30 minutes.
func NewMeetingInput(opts ...InputOption) application.MeetingInput {
	input := application.MeetingInput{
		Title:        "Technical interview",
		Date:         "2024-01-01",
		Time:         "10:30",
		Duration:     30,
		Participants: []string{"candidate@example.com", "interviewer-7"},
	}
	for _, opt := range opts {
		opt(&input)
	}
	return input
}

// WithInputID sets the input ID.
func WithInputID(id string) InputOption {
	return func(in *application.MeetingInput) {
		in.ID = id
	}
}

// WithDateTime sets the date and time components.
func WithDateTime(date, clock string) InputOption {
	return func(in *application.MeetingInput) {
		in.Date = date
		in.Time = clock
	}
}

// WithInputDuration sets the raw duration value.
func WithInputDuration(value any) InputOption {
	return func(in *application.MeetingInput) {
		in.Duration = value
	}
}

// WithInputParticipants replaces the participant list.
func WithInputParticipants(participants ...string) InputOption {
	return func(in *application.MeetingInput) {
		in.Participants = participants
	}
}

// WithInputLink sets the raw meeting link.
func WithInputLink(link string) InputOption {
	return func(in *application.MeetingInput) {
		in.MeetingLink = &link
	}
}
