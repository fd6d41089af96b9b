// Package scheduler implements the weekly scheduling engine: it models the
// week as a set of free time slots, derives per-activity time requirements
// from the life configuration, compares them against what is already on the
// calendar, and proposes bookings to close the gaps. Everything here is pure
// computation over caller-supplied data; calendar and memory I/O live in
// their own packages.
package scheduler

import (
	"time"

	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/utils"
)

type Scheduler struct {
	cfg *config.Config
	loc *time.Location
}

// New creates a scheduler over a validated configuration snapshot.
func New(cfg *config.Config) *Scheduler {
	loc, err := utils.LoadLocation(cfg.Meta.Timezone)
	if err != nil {
		loc = time.Local
	}
	return &Scheduler{cfg: cfg, loc: loc}
}

// Location returns the timezone all week math happens in.
func (s *Scheduler) Location() *time.Location {
	return s.loc
}

// WeekBounds returns the [Monday 00:00, next Monday 00:00) span containing
// the reference time, in the configured timezone. This is the single week
// convention used everywhere in the engine.
func (s *Scheduler) WeekBounds(ref time.Time) (time.Time, time.Time) {
	ref = ref.In(s.loc)
	daysSinceMonday := (int(ref.Weekday()) + 6) % 7
	monday := utils.Midnight(ref.AddDate(0, 0, -daysSinceMonday))
	return monday, monday.AddDate(0, 0, 7)
}
