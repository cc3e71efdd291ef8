package application

import (
	"slices"
	"time"
)

// DefaultAllowedDurations lists the meeting lengths, in minutes, accepted by default.
var DefaultAllowedDurations = []int{15, 30, 45, 60, 90, 120}

const (
	// DefaultBusinessStartHour is the first hour of day at which meetings may start.
	DefaultBusinessStartHour = 9
	// DefaultBusinessEndHour is the exclusive upper bound for meeting start hours.
	DefaultBusinessEndHour = 18
)

// BusinessHours is the half-open hour-of-day window [StartHour, EndHour).
type BusinessHours struct {
	StartHour int
	EndHour   int
}

// Contains reports whether hour falls inside the window.
func (b BusinessHours) Contains(hour int) bool {
	return hour >= b.StartHour && hour < b.EndHour
}

func (b BusinessHours) valid() bool {
	return b.StartHour >= 0 && b.EndHour <= 24 && b.StartHour < b.EndHour
}

// Policy holds the static scheduling rules applied by a Validator.
type Policy struct {
	AllowedDurations []int
	BusinessHours    BusinessHours
	// Location is the zone in which dates are parsed and business hours evaluated.
	Location *time.Location
}

// DefaultPolicy returns the standard interview scheduling rules evaluated in UTC.
func DefaultPolicy() Policy {
	return Policy{
		AllowedDurations: slices.Clone(DefaultAllowedDurations),
		BusinessHours: BusinessHours{
			StartHour: DefaultBusinessStartHour,
			EndHour:   DefaultBusinessEndHour,
		},
		Location: time.UTC,
	}
}

// normalized fills unset or unusable fields from DefaultPolicy.
func (p Policy) normalized() Policy {
	defaults := DefaultPolicy()
	if len(p.AllowedDurations) == 0 {
		p.AllowedDurations = defaults.AllowedDurations
	} else {
		p.AllowedDurations = slices.Clone(p.AllowedDurations)
	}
	if p.BusinessHours == (BusinessHours{}) || !p.BusinessHours.valid() {
		p.BusinessHours = defaults.BusinessHours
	}
	if p.Location == nil {
		p.Location = defaults.Location
	}
	return p
}

// AllowsDuration reports whether minutes is one of the permitted lengths.
func (p Policy) AllowsDuration(minutes int) bool {
	return slices.Contains(p.AllowedDurations, minutes)
}
