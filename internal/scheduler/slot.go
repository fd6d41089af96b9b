package scheduler

import "time"

// TimeSlot is a half-open span of time [Start, End). Free slots are produced
// by the availability sweep; busy slots carry provenance from the calendar
// event that occupies them.
type TimeSlot struct {
	Start     time.Time
	End       time.Time
	Available bool

	// Provenance, set on busy slots built from calendar events.
	EventID    string
	EventTitle string
	Tagged     bool   // event carries an explicit activity tag
	ActivityID string // the tag, when present
}

// DurationMinutes returns the slot length truncated to whole minutes.
func (s *TimeSlot) DurationMinutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// Overlaps reports whether two slots share any time.
func (s *TimeSlot) Overlaps(other *TimeSlot) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

// Contains reports whether an instant falls within the slot. The start is
// inclusive, the end exclusive.
func (s *TimeSlot) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}
