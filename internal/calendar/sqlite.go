package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifeos/internal/models"
)

const eventsSchema = `
CREATE TABLE IF NOT EXISTS events (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	start_time  TEXT NOT NULL,
	end_time    TEXT NOT NULL,
	activity_id TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL DEFAULT '',
	source      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_time);
`

// SQLiteStore is a local calendar backend. It stands in for an external
// calendar service: same contract, no network.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// Open opens (creating if necessary) a calendar database at path.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar database: %w", err)
	}
	if _, err := db.Exec(eventsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize calendar schema: %w", err)
	}
	return &SQLiteStore{path: path, db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ListEvents(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, start_time, end_time, activity_id, location, source
		FROM events
		WHERE start_time >= ? AND start_time < ?
		ORDER BY start_time`,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) CreateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, title, description, start_time, end_time, activity_id, location, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Title, ev.Description,
		ev.Start.UTC().Format(time.RFC3339), ev.End.UTC().Format(time.RFC3339),
		ev.ActivityID, ev.Location, ev.Source)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return ev, nil
}

func (s *SQLiteStore) UpdateEvent(ctx context.Context, ev models.Event) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE events
		SET title = ?, description = ?, start_time = ?, end_time = ?, activity_id = ?, location = ?, source = ?
		WHERE id = ?`,
		ev.Title, ev.Description,
		ev.Start.UTC().Format(time.RFC3339), ev.End.UTC().Format(time.RFC3339),
		ev.ActivityID, ev.Location, ev.Source, ev.ID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEvent(rows *sql.Rows) (models.Event, error) {
	var ev models.Event
	var startStr, endStr string
	if err := rows.Scan(&ev.ID, &ev.Title, &ev.Description, &startStr, &endStr, &ev.ActivityID, &ev.Location, &ev.Source); err != nil {
		return models.Event{}, fmt.Errorf("failed to scan event: %w", err)
	}
	var err error
	if ev.Start, err = time.Parse(time.RFC3339, startStr); err != nil {
		return models.Event{}, fmt.Errorf("bad start time for event %s: %w", ev.ID, err)
	}
	if ev.End, err = time.Parse(time.RFC3339, endStr); err != nil {
		return models.Event{}, fmt.Errorf("bad end time for event %s: %w", ev.ID, err)
	}
	return ev, nil
}
