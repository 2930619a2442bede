package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Escalation is the write-once record persisted when a conversation is
// handed to a human. Snapshot is the JSON-serialized conversation at
// escalation time.
type Escalation struct {
	Email    string
	Name     string
	Message  string
	Snapshot []byte
}

// InsertEscalation writes an escalation record. Insert-only; records
// are never updated or deleted by this service.
func (s *Store) InsertEscalation(ctx context.Context, e Escalation) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO escalations (id, email, name, message, conversation, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`,
		id, e.Email, e.Name, e.Message, e.Snapshot,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert escalation: %w", err)
	}
	return id, nil
}
