package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/utils"
)

// ProposedEvent is a tentative booking for one activity session. The caller
// decides whether to realize it as a real calendar event.
type ProposedEvent struct {
	Activity  *config.Activity
	Start     time.Time
	End       time.Time
	Rationale string
	Priority  config.Priority
}

// Proposal is the output of one scheduling pass: the proposed bookings plus
// the coverage the week would have if every proposal were accepted.
type Proposal struct {
	WeekStart time.Time
	Events    []ProposedEvent
	Coverage  map[string]Coverage
}

// ProposeSchedule greedily fills the week's availability gaps. Activities
// with a session deficit are processed in priority order (ties broken by
// larger deficit, then configuration order); each needed session is placed
// first-fit into the earliest preferred slot long enough for the activity's
// minimum duration, shrinking that slot in place so consumed time is never
// re-offered. Activities that cannot be placed keep their residual deficit
// in the coverage output.
func (s *Scheduler) ProposeSchedule(weekStart time.Time, events []models.Event) *Proposal {
	weekStart, weekEnd := s.WeekBounds(weekStart)

	analysis := s.AnalyzeScheduledVsRequired(events, weekStart)

	busy := make([]models.Event, 0, len(events))
	busy = append(busy, events...)
	busy = append(busy, s.TemplateEvents(weekStart, weekEnd)...)
	available := s.AvailableSlots(busy, weekStart, weekEnd, constants.DefaultMinSlotMinutes)

	type pending struct {
		act *config.Activity
		cov Coverage
	}
	var queue []pending
	for i := range s.cfg.Activities {
		act := &s.cfg.Activities[i]
		cov, ok := analysis[act.ID]
		if !ok || cov.SessionsDeficit <= 0 {
			continue
		}
		queue = append(queue, pending{act: act, cov: cov})
	}
	// Stable: equal rank and deficit keep configuration order.
	sort.SliceStable(queue, func(i, j int) bool {
		ri, rj := queue[i].cov.Priority.Rank(), queue[j].cov.Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return queue[i].cov.SessionsDeficit > queue[j].cov.SessionsDeficit
	})

	proposal := &Proposal{WeekStart: weekStart}

	for _, p := range queue {
		needed := p.cov.SessionsDeficit
		minDur, _ := p.act.DurationRange()

		slots := s.FilterSlotsByPreference(available, p.act)
		if len(slots) == 0 {
			// Never fail to schedule on preference mismatch alone.
			slots = available
		}

		for _, slot := range slots {
			if needed <= 0 {
				break
			}
			if slot.DurationMinutes() < minDur {
				continue
			}
			length := minDur
			if d := slot.DurationMinutes(); d < length {
				length = d
			}
			end := slot.Start.Add(time.Duration(length) * time.Minute)

			proposal.Events = append(proposal.Events, ProposedEvent{
				Activity:  p.act,
				Start:     slot.Start,
				End:       end,
				Rationale: fmt.Sprintf("filling deficit of %d sessions for %s", p.cov.SessionsDeficit, p.act.Name),
				Priority:  p.cov.Priority,
			})

			// Shrink the slot in place; exhausted slots are skipped by the
			// duration check on later passes.
			slot.Start = end
			needed--
		}
	}

	// Final coverage counts the proposals as if they were booked.
	withProposed := make([]models.Event, 0, len(events)+len(proposal.Events))
	withProposed = append(withProposed, events...)
	for i, pe := range proposal.Events {
		withProposed = append(withProposed, models.Event{
			ID:         fmt.Sprintf("proposed-%d", i),
			Title:      pe.Activity.Name,
			Start:      pe.Start,
			End:        pe.End,
			ActivityID: pe.Activity.ID,
			Source:     "proposed",
		})
	}
	proposal.Coverage = s.AnalyzeScheduledVsRequired(withProposed, weekStart)

	return proposal
}

// FindSlotsForActivity returns the slots suitable for one activity over the
// next searchDays days, preferred slots first; when no slot matches the
// preferences, all suitable slots are returned instead.
func (s *Scheduler) FindSlotsForActivity(act *config.Activity, events []models.Event, from time.Time, searchDays int) []*TimeSlot {
	if searchDays <= 0 {
		searchDays = constants.DefaultSearchDays
	}
	start := utils.Midnight(from.In(s.loc))
	end := start.AddDate(0, 0, searchDays)

	busy := make([]models.Event, 0, len(events))
	busy = append(busy, events...)
	busy = append(busy, s.TemplateEvents(start, end)...)
	available := s.AvailableSlots(busy, start, end, constants.DefaultMinSlotMinutes)

	minDur, _ := act.DurationRange()
	var suitable []*TimeSlot
	for _, slot := range available {
		if slot.DurationMinutes() >= minDur {
			suitable = append(suitable, slot)
		}
	}

	if preferred := s.FilterSlotsByPreference(suitable, act); len(preferred) > 0 {
		return preferred
	}
	return suitable
}

// DaySchedule builds the full busy/free timeline for one calendar day.
func (s *Scheduler) DaySchedule(events []models.Event, day time.Time) []*TimeSlot {
	start := utils.Midnight(day.In(s.loc))
	end := start.AddDate(0, 0, 1)

	var busy []*TimeSlot
	for _, ev := range events {
		if !ev.Valid() {
			continue
		}
		evStart, evEnd := ev.Start.In(s.loc), ev.End.In(s.loc)
		if !evEnd.After(start) || !evStart.Before(end) {
			continue
		}
		if evStart.Before(start) {
			evStart = start
		}
		if evEnd.After(end) {
			evEnd = end
		}
		busy = append(busy, &TimeSlot{
			Start:      evStart,
			End:        evEnd,
			EventID:    ev.ID,
			EventTitle: ev.Title,
			Tagged:     ev.ActivityID != "",
			ActivityID: ev.ActivityID,
		})
	}
	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].Start.Before(busy[j].Start)
	})

	var timeline []*TimeSlot
	current := start
	for _, b := range busy {
		if b.Start.After(current) {
			timeline = append(timeline, &TimeSlot{Start: current, End: b.Start, Available: true})
		}
		timeline = append(timeline, b)
		if b.End.After(current) {
			current = b.End
		}
	}
	if current.Before(end) {
		timeline = append(timeline, &TimeSlot{Start: current, End: end, Available: true})
	}

	return timeline
}
