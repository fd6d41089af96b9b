package models

import "time"

// Event is a calendar event as seen by the scheduling core. It is an internal
// representation, independent of any specific calendar provider; the scheduler
// only ever reads it.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	ActivityID  string    `json:"activity_id,omitempty"` // set for events the scheduler generated
	Location    string    `json:"location,omitempty"`
	Source      string    `json:"source,omitempty"`
}

// DurationMinutes returns the event length in whole minutes.
func (e Event) DurationMinutes() int {
	return int(e.End.Sub(e.Start).Minutes())
}

// Valid reports whether the event carries a usable start/end pair. Events from
// upstream calendars occasionally arrive without one (all-day entries,
// malformed payloads); the scheduler skips those rather than failing the week.
func (e Event) Valid() bool {
	return !e.Start.IsZero() && !e.End.IsZero() && e.End.After(e.Start)
}
