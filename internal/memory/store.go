// Package memory persists free-text notes about a user: preferences,
// facts, and feedback that inform future scheduling conversations.
package memory

import (
	"context"
	"errors"

	"github.com/julianstephens/lifeos/internal/models"
)

// ErrNotFound indicates the referenced memory does not exist.
var ErrNotFound = errors.New("memory not found")

// Store persists and retrieves memories for a user.
type Store interface {
	// Add stores a new memory and returns it with id and timestamp set.
	// An unknown kind falls back to "context".
	Add(ctx context.Context, userID, content string, kind models.MemoryKind) (models.Memory, error)
	// Search returns up to limit memories whose content matches query,
	// newest first.
	Search(ctx context.Context, userID, query string, limit int) ([]models.Memory, error)
	// All returns every memory for the user, newest first.
	All(ctx context.Context, userID string) ([]models.Memory, error)
	// Delete removes a memory by id.
	Delete(ctx context.Context, id string) error
	Close() error
}
