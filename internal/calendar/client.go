// Package calendar provides the calendar collaborator boundary: a narrow
// list/create/update/delete capability over events in a time range. The
// scheduling engine only ever lists; realizing proposals as events is the
// caller's decision.
package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/julianstephens/lifeos/internal/models"
)

// ErrNotFound is returned when an event id does not exist.
var ErrNotFound = errors.New("event not found")

// Client is the capability the assistant needs from any calendar backend.
type Client interface {
	// ListEvents returns the events with a start in [start, end), ordered
	// chronologically.
	ListEvents(ctx context.Context, start, end time.Time) ([]models.Event, error)
	CreateEvent(ctx context.Context, ev models.Event) (models.Event, error)
	UpdateEvent(ctx context.Context, ev models.Event) error
	DeleteEvent(ctx context.Context, id string) error
	Close() error
}
