package scheduler

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval returns the interval beginning at start and lasting the given number of minutes.
func NewInterval(start time.Time, minutes int) Interval {
	return Interval{Start: start, End: start.Add(time.Duration(minutes) * time.Minute)}
}

// Overlaps reports whether the two intervals share at least one instant.
// Intervals that only touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Intersection returns the shared portion of two overlapping intervals.
func (i Interval) Intersection(other Interval) Interval {
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := i.End
	if other.End.Before(end) {
		end = other.End
	}
	return Interval{Start: start, End: end}
}

// Booking represents an occupied slot in the interview calendar.
type Booking struct {
	ID       string
	Interval Interval
	Canceled bool
}

// Conflict details an overlapping booking that callers can present to users.
type Conflict struct {
	// Index is the position of the conflicting booking in the existing slice.
	Index         int
	WithBookingID string
	OverlapWindow Interval
}

// DetectConflicts identifies every existing booking that overlaps the candidate.
// Bookings sharing the candidate's non-empty ID and canceled bookings are
// ignored; an empty candidate ID never matches.
// Conflicts are returned in the order the bookings were supplied.
func DetectConflicts(existing []Booking, candidate Booking) []Conflict {
	var conflicts []Conflict
	for idx, booking := range existing {
		if booking.Canceled {
			continue
		}
		if candidate.ID != "" && booking.ID == candidate.ID {
			continue
		}
		if !candidate.Interval.Overlaps(booking.Interval) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Index:         idx,
			WithBookingID: booking.ID,
			OverlapWindow: candidate.Interval.Intersection(booking.Interval),
		})
	}
	return conflicts
}
