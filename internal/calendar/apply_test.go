package calendar

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/scheduler"
)

func applyTestConfig() *config.Config {
	return &config.Config{
		Activities: []config.Activity{
			{ID: "run", Name: "Running", Category: config.CategoryHealth, Location: "park"},
			{ID: "read", Name: "Reading", Category: config.CategoryLearning},
		},
		EventFormat: config.EventFormat{Prefix: "[plan] ", IncludeCategory: true},
	}
}

func TestApplyProposal_CreatesTaggedEvents(t *testing.T) {
	cfg := applyTestConfig()
	mock := NewMock()
	start := time.Date(2026, time.January, 5, 7, 0, 0, 0, time.UTC)

	p := &scheduler.Proposal{
		WeekStart: start,
		Events: []scheduler.ProposedEvent{
			{Activity: &cfg.Activities[0], Start: start, End: start.Add(45 * time.Minute)},
			{Activity: &cfg.Activities[1], Start: start.Add(12 * time.Hour), End: start.Add(12*time.Hour + 30*time.Minute)},
		},
	}

	created, err := ApplyProposal(context.Background(), mock, cfg, p)
	if err != nil {
		t.Fatalf("ApplyProposal failed: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d events, want 2", len(created))
	}

	if created[0].Title != "[plan] Running [health]" {
		t.Errorf("title = %q, want prefixed name with category", created[0].Title)
	}
	if created[0].ActivityID != "run" || created[0].Source != "lifeos" {
		t.Errorf("event not tagged: activity=%q source=%q", created[0].ActivityID, created[0].Source)
	}
	if created[0].Location != "park" {
		t.Errorf("location = %q, want activity location", created[0].Location)
	}

	stored, err := mock.ListEvents(context.Background(), start, start.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(stored) != 2 {
		t.Errorf("mock holds %d events, want 2", len(stored))
	}
}

// failAfter wraps a client and fails every create past the first n.
type failAfter struct {
	Client
	n       int
	created int
}

func (f *failAfter) CreateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	if f.created >= f.n {
		return models.Event{}, errors.New("calendar unavailable")
	}
	f.created++
	return f.Client.CreateEvent(ctx, ev)
}

func TestApplyProposal_PartialFailureKeepsCreated(t *testing.T) {
	cfg := applyTestConfig()
	client := &failAfter{Client: NewMock(), n: 1}
	start := time.Date(2026, time.January, 5, 7, 0, 0, 0, time.UTC)

	p := &scheduler.Proposal{
		WeekStart: start,
		Events: []scheduler.ProposedEvent{
			{Activity: &cfg.Activities[0], Start: start, End: start.Add(45 * time.Minute)},
			{Activity: &cfg.Activities[1], Start: start.Add(time.Hour), End: start.Add(90 * time.Minute)},
		},
	}

	created, err := ApplyProposal(context.Background(), client, cfg, p)
	if err == nil {
		t.Fatal("expected an error from the failing client")
	}
	if !strings.Contains(err.Error(), "Reading") {
		t.Errorf("error should name the activity that failed: %v", err)
	}
	if len(created) != 1 {
		t.Errorf("created %d events before failure, want 1", len(created))
	}
}
