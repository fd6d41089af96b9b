package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

var dayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// FormatProposal renders a proposal as readable text: proposed sessions
// grouped by day, followed by a per-activity coverage checklist.
func (s *Scheduler) FormatProposal(p *Proposal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Schedule proposal for week of %s\n", p.WeekStart.Format("January 2, 2006"))

	byDay := make(map[string][]ProposedEvent)
	for _, ev := range p.Events {
		day := ev.Start.Weekday().String()
		byDay[day] = append(byDay[day], ev)
	}

	for _, day := range dayOrder {
		events := byDay[day]
		if len(events) == 0 {
			continue
		}
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Start.Before(events[j].Start)
		})
		fmt.Fprintf(&b, "\n%s:\n", day)
		for _, ev := range events {
			fmt.Fprintf(&b, "  %s-%s  %s\n",
				ev.Start.Format("15:04"), ev.End.Format("15:04"), ev.Activity.Name)
		}
	}

	b.WriteString("\nCoverage:\n")
	// Checklist follows configuration order for a stable rendering.
	for i := range s.cfg.Activities {
		act := &s.cfg.Activities[i]
		cov, ok := p.Coverage[act.ID]
		if !ok {
			continue
		}
		status := "✗"
		if cov.OnTrack {
			status = "✓"
		}
		fmt.Fprintf(&b, "  %s %s: %d/%d sessions\n",
			status, act.Name, cov.ScheduledSessions, cov.MinSessions)
	}

	return b.String()
}

// FormatDaySchedule renders a day timeline with busy and free spans.
func (s *Scheduler) FormatDaySchedule(timeline []*TimeSlot, day time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Schedule for %s\n", day.Format("Monday, January 2, 2006"))
	for _, slot := range timeline {
		label := slot.EventTitle
		if slot.Available {
			label = fmt.Sprintf("free (%d min)", slot.DurationMinutes())
		}
		fmt.Fprintf(&b, "  %s-%s  %s\n",
			slot.Start.Format("15:04"), slot.End.Format("15:04"), label)
	}
	return b.String()
}
