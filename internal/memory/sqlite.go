package memory

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

// Fixed-width so lexicographic ORDER BY on the column is chronological.
const timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

const memoriesSchema = `
CREATE TABLE IF NOT EXISTS memories (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	content    TEXT NOT NULL,
	kind       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_memories_user ON memories(user_id, created_at);
`

// SQLiteStore keeps memories in a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) a memory database at path.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory database: %w", err)
	}
	if _, err := db.Exec(memoriesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize memory schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Add(ctx context.Context, userID, content string, kind models.MemoryKind) (models.Memory, error) {
	if !models.ValidMemoryKinds[kind] {
		kind = models.MemoryContext
	}
	m := models.Memory{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO memories (id, user_id, content, kind, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.Content, string(m.Kind), m.CreatedAt.Format(timestampFormat))
	if err != nil {
		return models.Memory{}, fmt.Errorf("failed to store memory: %w", err)
	}
	return m, nil
}

func (s *SQLiteStore) Search(ctx context.Context, userID, query string, limit int) ([]models.Memory, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, content, kind, created_at
		FROM memories
		WHERE user_id = ? AND content LIKE ?
		ORDER BY created_at DESC
		LIMIT ?`,
		userID, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search memories: %w", err)
	}
	defer rows.Close()
	return scanMemories(rows)
}

func (s *SQLiteStore) All(ctx context.Context, userID string) ([]models.Memory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, content, kind, created_at
		FROM memories
		WHERE user_id = ?
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	defer rows.Close()
	return scanMemories(rows)
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM memories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
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

func scanMemories(rows *sql.Rows) ([]models.Memory, error) {
	var memories []models.Memory
	for rows.Next() {
		var m models.Memory
		var kind, created string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Content, &kind, &created); err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		m.Kind = models.MemoryKind(kind)
		var err error
		if m.CreatedAt, err = time.Parse(timestampFormat, created); err != nil {
			return nil, fmt.Errorf("bad timestamp for memory %s: %w", m.ID, err)
		}
		memories = append(memories, m)
	}
	return memories, rows.Err()
}
