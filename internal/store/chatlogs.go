package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/conversation"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/intent"
)

// ChatLog is one append-only transcript line. A completed turn writes
// two (user + assistant); an escalated turn writes the user line only.
type ChatLog struct {
	Email      string
	Name       string
	Role       conversation.Role
	Message    string
	Intent     intent.Intent
	Confidence float64
}

// InsertChatLog appends one transcript line.
func (s *Store) InsertChatLog(ctx context.Context, l ChatLog) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO chat_logs (id, email, name, role, message, intent, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`,
		uuid.New(), l.Email, l.Name, string(l.Role), l.Message, string(l.Intent), l.Confidence,
	)
	if err != nil {
		return fmt.Errorf("insert chat log: %w", err)
	}
	return nil
}
