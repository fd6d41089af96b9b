package models

import "time"

// MemoryKind classifies a stored memory entry.
type MemoryKind string

const (
	MemoryPreference MemoryKind = "preference"
	MemoryFact       MemoryKind = "fact"
	MemoryFeedback   MemoryKind = "feedback"
	MemoryContext    MemoryKind = "context"
)

// ValidMemoryKinds are the allowed memory kinds.
var ValidMemoryKinds = map[MemoryKind]bool{
	MemoryPreference: true,
	MemoryFact:       true,
	MemoryFeedback:   true,
	MemoryContext:    true,
}

// Memory is a free-text note remembered about a user.
type Memory struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	Kind      MemoryKind `json:"kind"`
	CreatedAt time.Time  `json:"created_at"`
}
