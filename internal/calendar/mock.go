package calendar

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifeos/internal/models"
)

// Mock is an in-memory calendar backend for tests and dry runs.
type Mock struct {
	mu     sync.Mutex
	events map[string]models.Event
}

// NewMock creates a mock calendar pre-seeded with events.
func NewMock(seed ...models.Event) *Mock {
	m := &Mock{events: make(map[string]models.Event, len(seed))}
	for _, ev := range seed {
		if ev.ID == "" {
			ev.ID = uuid.NewString()
		}
		m.events[ev.ID] = ev
	}
	return m
}

func (m *Mock) ListEvents(_ context.Context, start, end time.Time) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Event
	for _, ev := range m.events {
		if !ev.Start.Before(start) && ev.Start.Before(end) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

func (m *Mock) CreateEvent(_ context.Context, ev models.Event) (models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	m.events[ev.ID] = ev
	return ev, nil
}

func (m *Mock) UpdateEvent(_ context.Context, ev models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[ev.ID]; !ok {
		return ErrNotFound
	}
	m.events[ev.ID] = ev
	return nil
}

func (m *Mock) DeleteEvent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[id]; !ok {
		return ErrNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *Mock) Close() error { return nil }
