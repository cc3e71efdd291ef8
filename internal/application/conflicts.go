package application

import "github.com/example/interview-scheduler/internal/scheduler"

// CheckSchedulingConflicts reports a scheduling conflict when candidate
// overlaps any active booking in existing. The candidate's own booking and
// canceled bookings never conflict. A candidate without an ID has no prior
// version, so it is checked against every booking, including bookings that
// also lack an ID. The returned error lists copies of every
// conflicting booking; existing is not modified or retained.
func CheckSchedulingConflicts(candidate MeetingRequest, existing []MeetingRequest) error {
	if len(existing) == 0 {
		return nil
	}

	bookings := make([]scheduler.Booking, 0, len(existing))
	for _, meeting := range existing {
		bookings = append(bookings, toSchedulerBooking(meeting))
	}

	conflicts := scheduler.DetectConflicts(bookings, toSchedulerBooking(candidate))
	if len(conflicts) == 0 {
		return nil
	}

	colliding := make([]MeetingRequest, 0, len(conflicts))
	for _, conflict := range conflicts {
		colliding = append(colliding, existing[conflict.Index].clone())
	}
	return NewConflictError(colliding)
}

func toSchedulerBooking(meeting MeetingRequest) scheduler.Booking {
	return scheduler.Booking{
		ID:       meeting.ID,
		Interval: scheduler.NewInterval(meeting.Start, meeting.DurationMinutes),
		Canceled: meeting.Status.IsCanceled(),
	}
}

// ConflictIDs returns the booking IDs carried by a scheduling conflict error.
func ConflictIDs(err error) []string {
	tagged, ok := AsError(err)
	if !ok || tagged.Kind != KindSchedulingConflict || len(tagged.Details.Conflicts) == 0 {
		return nil
	}
	ids := make([]string, 0, len(tagged.Details.Conflicts))
	for _, meeting := range tagged.Details.Conflicts {
		ids = append(ids, meeting.ID)
	}
	return ids
}
