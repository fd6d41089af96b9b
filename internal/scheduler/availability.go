package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/utils"
)

// AvailableSlots inverts a set of busy events into the ordered free gaps
// within [rangeStart, rangeEnd). Gaps shorter than minDuration minutes are
// dropped. Busy intervals are clipped to the range before the sweep, so
// events beginning before the range cannot drag the cursor around.
func (s *Scheduler) AvailableSlots(events []models.Event, rangeStart, rangeEnd time.Time, minDuration int) []*TimeSlot {
	if minDuration <= 0 {
		minDuration = constants.DefaultMinSlotMinutes
	}

	busy := make([]*TimeSlot, 0, len(events))
	for _, ev := range events {
		if !ev.Valid() {
			// One malformed upstream event should not block the week.
			continue
		}
		start, end := ev.Start.In(s.loc), ev.End.In(s.loc)
		if !end.After(rangeStart) || !start.Before(rangeEnd) {
			continue
		}
		if start.Before(rangeStart) {
			start = rangeStart
		}
		if end.After(rangeEnd) {
			end = rangeEnd
		}
		busy = append(busy, &TimeSlot{
			Start:      start,
			End:        end,
			EventID:    ev.ID,
			EventTitle: ev.Title,
			Tagged:     ev.ActivityID != "",
			ActivityID: ev.ActivityID,
		})
	}

	// Stable so that events sharing a start keep their input order.
	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].Start.Before(busy[j].Start)
	})

	// Overlapping busy intervals need no explicit merge: the cursor only ever
	// moves forward via max(cursor, interval end).
	var available []*TimeSlot
	current := rangeStart
	for _, b := range busy {
		if b.Start.After(current) {
			gap := &TimeSlot{Start: current, End: b.Start, Available: true}
			if gap.DurationMinutes() >= minDuration {
				available = append(available, gap)
			}
		}
		if b.End.After(current) {
			current = b.End
		}
	}
	if current.Before(rangeEnd) {
		gap := &TimeSlot{Start: current, End: rangeEnd, Available: true}
		if gap.DurationMinutes() >= minDuration {
			available = append(available, gap)
		}
	}

	return available
}

// TemplateEvents synthesizes busy blocks for the work, sleep, and commitment
// templates over [rangeStart, rangeEnd), so the availability sweep treats
// them like any other calendar event.
func (s *Scheduler) TemplateEvents(rangeStart, rangeEnd time.Time) []models.Event {
	var events []models.Event

	for day := utils.Midnight(rangeStart.In(s.loc)); day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		dayName := utils.DayName(day)
		dateStr := day.Format(constants.DateFormat)

		if ev, ok := s.workBlock(day, dayName, dateStr); ok {
			events = append(events, ev)
		}
		events = append(events, s.sleepBlocks(day, dateStr)...)
		events = append(events, s.commitmentBlocks(day, dayName, dateStr)...)
	}

	return events
}

func (s *Scheduler) workBlock(day time.Time, dayName, dateStr string) (models.Event, bool) {
	work := s.cfg.Template.Work
	if !containsDay(work.Days, dayName) {
		return models.Event{}, false
	}
	start, err := utils.At(day, work.Start)
	if err != nil {
		return models.Event{}, false
	}
	end, err := utils.At(day, work.End)
	if err != nil {
		return models.Event{}, false
	}

	// Office days extend the block by the commute on both sides.
	if od := s.cfg.Template.OfficeDays; od != nil && containsDay(od.Days, dayName) && od.CommuteMinutes > 0 {
		start = start.Add(-time.Duration(od.CommuteMinutes) * time.Minute)
		end = end.Add(time.Duration(od.CommuteMinutes) * time.Minute)
	}

	return models.Event{
		ID:     "work-" + dateStr,
		Title:  "Work",
		Start:  start,
		End:    end,
		Source: "template",
	}, true
}

// sleepBlocks carves out the sleep window for one calendar day: midnight to
// wake, and bedtime (less wind-down) to the following midnight.
func (s *Scheduler) sleepBlocks(day time.Time, dateStr string) []models.Event {
	sleep := s.cfg.Template.Sleep
	var events []models.Event

	if wake, err := utils.At(day, sleep.TargetWake); err == nil && wake.After(day) {
		events = append(events, models.Event{
			ID:     "sleep-morning-" + dateStr,
			Title:  "Sleep",
			Start:  day,
			End:    wake,
			Source: "template",
		})
	}
	if bed, err := utils.At(day, sleep.TargetBedtime); err == nil {
		if sleep.WindDown > 0 {
			bed = bed.Add(-time.Duration(sleep.WindDown) * time.Minute)
		}
		nextMidnight := day.AddDate(0, 0, 1)
		if bed.Before(nextMidnight) {
			events = append(events, models.Event{
				ID:     "sleep-night-" + dateStr,
				Title:  "Sleep",
				Start:  bed,
				End:    nextMidnight,
				Source: "template",
			})
		}
	}

	return events
}

func (s *Scheduler) commitmentBlocks(day time.Time, dayName, dateStr string) []models.Event {
	var events []models.Event
	for i := range s.cfg.Commitments {
		cm := &s.cfg.Commitments[i]
		if !containsDay(cm.DaysList(), dayName) {
			continue
		}
		start, err := utils.At(day, cm.Start)
		if err != nil {
			continue
		}
		var end time.Time
		if cm.End != "" {
			end, err = utils.At(day, cm.End)
			if err != nil {
				continue
			}
		} else {
			end = start.Add(time.Duration(cm.Duration) * time.Minute)
		}
		if cm.TravelTime > 0 {
			start = start.Add(-time.Duration(cm.TravelTime) * time.Minute)
			end = end.Add(time.Duration(cm.TravelTime) * time.Minute)
		}
		events = append(events, models.Event{
			ID:       fmt.Sprintf("commitment-%d-%s", i, dateStr),
			Title:    cm.Name,
			Start:    start,
			End:      end,
			Location: cm.Location,
			Source:   "template",
		})
	}
	return events
}

func containsDay(days []string, dayName string) bool {
	for _, d := range days {
		if strings.EqualFold(d, dayName) {
			return true
		}
	}
	return false
}
