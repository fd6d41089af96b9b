package scheduler

import (
	"testing"
	"time"

	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/models"
)

func openScheduler() *Scheduler {
	return New(testConfig(nil, config.Priorities{}))
}

func TestAvailableSlots_EmptyCalendarYieldsWholeRange(t *testing.T) {
	s := openScheduler()
	start := utc(2026, time.January, 5, 8, 0)
	end := utc(2026, time.January, 5, 18, 0)

	slots := s.AvailableSlots(nil, start, end, 15)

	if len(slots) != 1 {
		t.Fatalf("expected one slot spanning the range, got %d", len(slots))
	}
	if !slots[0].Start.Equal(start) || !slots[0].End.Equal(end) {
		t.Errorf("slot = [%v, %v), want [%v, %v)", slots[0].Start, slots[0].End, start, end)
	}
}

func TestAvailableSlots_PartitionsRangeAroundBusyIntervals(t *testing.T) {
	s := openScheduler()
	start := utc(2026, time.January, 5, 8, 0)
	end := utc(2026, time.January, 5, 18, 0)

	events := []models.Event{
		{ID: "a", Title: "Meeting", Start: utc(2026, time.January, 5, 10, 0), End: utc(2026, time.January, 5, 11, 0)},
		{ID: "b", Title: "Lunch", Start: utc(2026, time.January, 5, 12, 30), End: utc(2026, time.January, 5, 13, 0)},
	}

	slots := s.AvailableSlots(events, start, end, 15)

	if len(slots) != 3 {
		t.Fatalf("expected 3 free slots, got %d", len(slots))
	}

	// The free slots plus the busy intervals must partition the range with no
	// overlap and no double counting.
	freeMinutes := 0
	for i, slot := range slots {
		freeMinutes += slot.DurationMinutes()
		if i > 0 && slots[i-1].End.After(slot.Start) {
			t.Errorf("slots %d and %d overlap", i-1, i)
		}
	}
	busyMinutes := 60 + 30
	rangeMinutes := int(end.Sub(start).Minutes())
	if freeMinutes+busyMinutes != rangeMinutes {
		t.Errorf("free(%d) + busy(%d) = %d, want %d", freeMinutes, busyMinutes, freeMinutes+busyMinutes, rangeMinutes)
	}
}

func TestAvailableSlots_OverlappingBusyIntervalsAbsorbedWithoutMerge(t *testing.T) {
	s := openScheduler()
	start := utc(2026, time.January, 5, 8, 0)
	end := utc(2026, time.January, 5, 18, 0)

	// Second interval is contained in the first; third overlaps its tail.
	events := []models.Event{
		{ID: "a", Start: utc(2026, time.January, 5, 9, 0), End: utc(2026, time.January, 5, 12, 0)},
		{ID: "b", Start: utc(2026, time.January, 5, 10, 0), End: utc(2026, time.January, 5, 11, 0)},
		{ID: "c", Start: utc(2026, time.January, 5, 11, 30), End: utc(2026, time.January, 5, 13, 0)},
	}

	slots := s.AvailableSlots(events, start, end, 15)

	want := []struct{ s, e time.Time }{
		{utc(2026, time.January, 5, 8, 0), utc(2026, time.January, 5, 9, 0)},
		{utc(2026, time.January, 5, 13, 0), utc(2026, time.January, 5, 18, 0)},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i, w := range want {
		if !slots[i].Start.Equal(w.s) || !slots[i].End.Equal(w.e) {
			t.Errorf("slot %d = [%v, %v), want [%v, %v)", i, slots[i].Start, slots[i].End, w.s, w.e)
		}
	}
}

func TestAvailableSlots_ClipsEventsOutsideRange(t *testing.T) {
	s := openScheduler()
	start := utc(2026, time.January, 5, 8, 0)
	end := utc(2026, time.January, 5, 18, 0)

	events := []models.Event{
		// Starts before the range: only the in-range part counts.
		{ID: "early", Start: utc(2026, time.January, 5, 6, 0), End: utc(2026, time.January, 5, 9, 0)},
		// Entirely outside the range: must not move the cursor at all.
		{ID: "other-day", Start: utc(2026, time.January, 6, 10, 0), End: utc(2026, time.January, 6, 11, 0)},
	}

	slots := s.AvailableSlots(events, start, end, 15)

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(utc(2026, time.January, 5, 9, 0)) || !slots[0].End.Equal(end) {
		t.Errorf("slot = [%v, %v), want [09:00, 18:00)", slots[0].Start, slots[0].End)
	}
}

func TestAvailableSlots_DropsGapsBelowMinimum(t *testing.T) {
	s := openScheduler()
	start := utc(2026, time.January, 5, 8, 0)
	end := utc(2026, time.January, 5, 12, 0)

	// Leaves a 20-minute gap between the two events.
	events := []models.Event{
		{ID: "a", Start: utc(2026, time.January, 5, 8, 0), End: utc(2026, time.January, 5, 9, 0)},
		{ID: "b", Start: utc(2026, time.January, 5, 9, 20), End: utc(2026, time.January, 5, 12, 0)},
	}

	if slots := s.AvailableSlots(events, start, end, 30); len(slots) != 0 {
		t.Errorf("20-minute gap should be dropped at min 30, got %d slots", len(slots))
	}
	if slots := s.AvailableSlots(events, start, end, 20); len(slots) != 1 {
		t.Errorf("20-minute gap should qualify at min 20 (inclusive boundary)")
	}
}

func TestAvailableSlots_SkipsMalformedEvents(t *testing.T) {
	s := openScheduler()
	start := utc(2026, time.January, 5, 8, 0)
	end := utc(2026, time.January, 5, 12, 0)

	events := []models.Event{
		{ID: "no-times", Title: "broken"},
		{ID: "inverted", Start: utc(2026, time.January, 5, 11, 0), End: utc(2026, time.January, 5, 10, 0)},
	}

	slots := s.AvailableSlots(events, start, end, 15)
	if len(slots) != 1 || !slots[0].Start.Equal(start) || !slots[0].End.Equal(end) {
		t.Errorf("malformed events should be skipped, leaving the range open")
	}
}

func TestAvailableSlots_Deterministic(t *testing.T) {
	s := openScheduler()
	start := utc(2026, time.January, 5, 0, 0)
	end := utc(2026, time.January, 12, 0, 0)

	events := []models.Event{
		{ID: "a", Start: utc(2026, time.January, 5, 9, 0), End: utc(2026, time.January, 5, 10, 0)},
		{ID: "b", Start: utc(2026, time.January, 5, 9, 0), End: utc(2026, time.January, 5, 11, 0)},
		{ID: "c", Start: utc(2026, time.January, 7, 14, 0), End: utc(2026, time.January, 7, 15, 0)},
	}

	first := s.AvailableSlots(events, start, end, 15)
	second := s.AvailableSlots(events, start, end, 15)

	if len(first) != len(second) {
		t.Fatalf("runs disagree on slot count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Errorf("slot %d differs between runs", i)
		}
	}
}

func TestTemplateEvents_SynthesizesWorkSleepAndCommitments(t *testing.T) {
	cfg := testConfig(nil, config.Priorities{})
	cfg.Template.Work = config.WorkTemplate{Days: []string{"monday"}, Start: "09:00", End: "17:00"}
	cfg.Template.Sleep = config.SleepTemplate{TargetBedtime: "23:00", TargetWake: "06:30"}
	cfg.Commitments = []config.Commitment{
		{Name: "Choir", Days: []string{"monday"}, Start: "19:00", End: "20:30"},
		{Name: "Gym class", Day: "tuesday", Start: "18:00", Duration: 60, TravelTime: 15},
	}
	s := New(cfg)

	start := utc(2026, time.January, 5, 0, 0) // Monday
	events := s.TemplateEvents(start, start.AddDate(0, 0, 2))

	byID := make(map[string]models.Event, len(events))
	for _, ev := range events {
		byID[ev.ID] = ev
	}

	work, ok := byID["work-2026-01-05"]
	if !ok {
		t.Fatal("missing Monday work block")
	}
	if !work.Start.Equal(utc(2026, time.January, 5, 9, 0)) || !work.End.Equal(utc(2026, time.January, 5, 17, 0)) {
		t.Errorf("work block = [%v, %v)", work.Start, work.End)
	}
	if _, ok := byID["work-2026-01-06"]; ok {
		t.Error("Tuesday is not a work day, but got a work block")
	}

	if _, ok := byID["sleep-morning-2026-01-05"]; !ok {
		t.Error("missing morning sleep block")
	}
	if _, ok := byID["sleep-night-2026-01-05"]; !ok {
		t.Error("missing night sleep block")
	}

	choir, ok := byID["commitment-0-2026-01-05"]
	if !ok {
		t.Fatal("missing choir commitment block")
	}
	if !choir.End.Equal(utc(2026, time.January, 5, 20, 30)) {
		t.Errorf("choir end = %v, want 20:30", choir.End)
	}

	gym, ok := byID["commitment-1-2026-01-06"]
	if !ok {
		t.Fatal("missing gym commitment block")
	}
	// Duration-based end plus travel buffer on both sides.
	if !gym.Start.Equal(utc(2026, time.January, 6, 17, 45)) || !gym.End.Equal(utc(2026, time.January, 6, 19, 15)) {
		t.Errorf("gym block = [%v, %v), want [17:45, 19:15)", gym.Start, gym.End)
	}
}
