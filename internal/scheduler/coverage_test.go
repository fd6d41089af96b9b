package scheduler

import (
	"testing"
	"time"

	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/models"
)

func coverageConfig() *config.Config {
	return testConfig([]config.Activity{
		{ID: "run", Name: "Run", Frequency: exactFreq(3), Duration: exactDur(45)},
		{ID: "guitar", Name: "Guitar", Frequency: exactFreq(2), Duration: exactDur(30)},
	}, config.Priorities{High: []string{"run"}})
}

var weekMonday = utc(2026, time.January, 5, 0, 0)

func TestAnalyze_TaggedEventsCount(t *testing.T) {
	s := New(coverageConfig())

	events := []models.Event{
		{ID: "1", Title: "whatever", ActivityID: "run", Start: utc(2026, time.January, 5, 7, 0), End: utc(2026, time.January, 5, 7, 45)},
		{ID: "2", Title: "whatever", ActivityID: "run", Start: utc(2026, time.January, 7, 7, 0), End: utc(2026, time.January, 7, 7, 45)},
	}

	analysis := s.AnalyzeScheduledVsRequired(events, weekMonday)

	run := analysis["run"]
	if run.ScheduledSessions != 2 || run.ScheduledMinutes != 90 {
		t.Errorf("run: scheduled = %d sessions / %d min, want 2 / 90", run.ScheduledSessions, run.ScheduledMinutes)
	}
	if run.SessionsDeficit != 1 {
		t.Errorf("run: deficit = %d, want 1", run.SessionsDeficit)
	}
	if run.OnTrack {
		t.Error("run: 2 of 3 sessions should not be on track")
	}
	if run.MinutesDeficit != 3*45-90 {
		t.Errorf("run: minutes deficit = %d, want %d", run.MinutesDeficit, 3*45-90)
	}
}

func TestAnalyze_UntaggedEventsMatchByName(t *testing.T) {
	s := New(coverageConfig())

	events := []models.Event{
		{ID: "1", Title: "Morning guitar practice", Start: utc(2026, time.January, 6, 8, 0), End: utc(2026, time.January, 6, 8, 30)},
	}

	analysis := s.AnalyzeScheduledVsRequired(events, weekMonday)
	if analysis["guitar"].ScheduledSessions != 1 {
		t.Error("untagged event should match activity by name substring")
	}
}

func TestAnalyze_StrictTagsDisablesNameFallback(t *testing.T) {
	cfg := coverageConfig()
	cfg.Matching.StrictTags = true
	s := New(cfg)

	events := []models.Event{
		{ID: "1", Title: "Morning guitar practice", Start: utc(2026, time.January, 6, 8, 0), End: utc(2026, time.January, 6, 8, 30)},
	}

	analysis := s.AnalyzeScheduledVsRequired(events, weekMonday)
	if analysis["guitar"].ScheduledSessions != 0 {
		t.Error("strict mode must ignore untagged events")
	}
}

func TestAnalyze_EventsOutsideWeekIgnored(t *testing.T) {
	s := New(coverageConfig())

	events := []models.Event{
		{ID: "before", ActivityID: "run", Start: utc(2026, time.January, 4, 7, 0), End: utc(2026, time.January, 4, 7, 45)},
		{ID: "after", ActivityID: "run", Start: utc(2026, time.January, 12, 7, 0), End: utc(2026, time.January, 12, 7, 45)},
	}

	analysis := s.AnalyzeScheduledVsRequired(events, weekMonday)
	if analysis["run"].ScheduledSessions != 0 {
		t.Error("events outside the [Monday, Monday+7d) week must not count")
	}
}

func TestAnalyze_SurplusAndOnTrack(t *testing.T) {
	s := New(coverageConfig())

	var events []models.Event
	for day := 0; day < 4; day++ {
		events = append(events, models.Event{
			ID:         string(rune('a' + day)),
			ActivityID: "guitar",
			Start:      utc(2026, time.January, 5+day, 20, 0),
			End:        utc(2026, time.January, 5+day, 20, 30),
		})
	}

	analysis := s.AnalyzeScheduledVsRequired(events, weekMonday)
	guitar := analysis["guitar"]
	if !guitar.OnTrack {
		t.Error("4 of 2 sessions should be on track")
	}
	if guitar.SessionsDeficit != 0 {
		t.Errorf("deficit = %d, want 0 (never negative)", guitar.SessionsDeficit)
	}
	if guitar.SessionsSurplus != 2 {
		t.Errorf("surplus = %d, want 2", guitar.SessionsSurplus)
	}
}
