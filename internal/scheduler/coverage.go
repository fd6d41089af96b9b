package scheduler

import (
	"strings"
	"time"

	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/models"
)

// Coverage compares what is scheduled for an activity against its weekly
// requirement. Deficits and surpluses are clamped at zero; an unresolvable
// deficit is a reported condition, never an error.
type Coverage struct {
	Activity          *config.Activity
	Priority          config.Priority
	MinSessions       int
	MaxSessions       int
	TargetMinutes     int // total minimum minutes for the week
	ScheduledSessions int
	ScheduledMinutes  int
	SessionsDeficit   int
	SessionsSurplus   int
	MinutesDeficit    int
	OnTrack           bool
}

// AnalyzeScheduledVsRequired tallies the week's events against every
// activity's requirement. An event counts toward an activity when it carries
// that activity's tag; untagged events fall back to a case-insensitive name
// match against the event title unless strict tag matching is configured.
// The name fallback is a deliberate heuristic so manually created events
// still count, accepting false positives on coincidental title overlap.
func (s *Scheduler) AnalyzeScheduledVsRequired(events []models.Event, weekStart time.Time) map[string]Coverage {
	requirements := s.CalculateWeeklyRequirements()
	weekStart, weekEnd := s.WeekBounds(weekStart)

	counts := make(map[string]int)
	minutes := make(map[string]int)

	for _, ev := range events {
		if !ev.Valid() {
			continue
		}
		start := ev.Start.In(s.loc)
		if start.Before(weekStart) || !start.Before(weekEnd) {
			continue
		}
		id := s.matchActivity(ev)
		if id == "" {
			continue
		}
		counts[id]++
		minutes[id] += ev.DurationMinutes()
	}

	analysis := make(map[string]Coverage, len(requirements))
	for id, req := range requirements {
		scheduled := counts[id]
		analysis[id] = Coverage{
			Activity:          req.Activity,
			Priority:          req.Priority,
			MinSessions:       req.MinSessions,
			MaxSessions:       req.MaxSessions,
			TargetMinutes:     req.TotalMinMinutes,
			ScheduledSessions: scheduled,
			ScheduledMinutes:  minutes[id],
			SessionsDeficit:   maxInt(0, req.MinSessions-scheduled),
			SessionsSurplus:   maxInt(0, scheduled-req.MaxSessions),
			MinutesDeficit:    maxInt(0, req.TotalMinMinutes-minutes[id]),
			OnTrack:           scheduled >= req.MinSessions,
		}
	}

	return analysis
}

func (s *Scheduler) matchActivity(ev models.Event) string {
	if ev.ActivityID != "" {
		return ev.ActivityID
	}
	if s.cfg.Matching.StrictTags {
		return ""
	}
	title := strings.ToLower(ev.Title)
	for i := range s.cfg.Activities {
		if strings.Contains(title, strings.ToLower(s.cfg.Activities[i].Name)) {
			return s.cfg.Activities[i].ID
		}
	}
	return ""
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
