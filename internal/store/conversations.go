package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/conversation"
)

// ConversationStore is the durable conversation.Store backed by the
// conversation_turns table. Each identity's turns are ordered by a seq
// column assigned inside a transaction that holds a per-identity
// advisory lock, so two requests for the same email serialize instead
// of racing on read-modify-append.
type ConversationStore struct {
	store *Store
}

func (s *Store) Conversations() *ConversationStore {
	return &ConversationStore{store: s}
}

func (cs *ConversationStore) GetOrCreate(ctx context.Context, email string, seed conversation.Turn) (conversation.Conversation, error) {
	tx, err := cs.store.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockIdentity(ctx, tx, email); err != nil {
		return nil, err
	}

	conv, err := loadTurns(ctx, tx, email)
	if err != nil {
		return nil, err
	}

	if len(conv) == 0 {
		_, err = tx.Exec(ctx, `
			INSERT INTO conversation_turns (id, email, seq, role, content, created_at)
			VALUES ($1, $2, 1, $3, $4, now())`,
			uuid.New(), email, string(seed.Role), seed.Content,
		)
		if err != nil {
			return nil, fmt.Errorf("insert seed turn: %w", err)
		}
		conv = conversation.Conversation{seed}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return conv, nil
}

func (cs *ConversationStore) Append(ctx context.Context, email string, turn conversation.Turn) (conversation.Conversation, error) {
	tx, err := cs.store.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockIdentity(ctx, tx, email); err != nil {
		return nil, err
	}

	conv, err := loadTurns(ctx, tx, email)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO conversation_turns (id, email, seq, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`,
		uuid.New(), email, len(conv)+1, string(turn.Role), turn.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("insert turn: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return append(conv, turn), nil
}

// lockIdentity takes the identity's advisory lock for the rest of the
// transaction. Row locks cannot serialize concurrent appends: a
// blocked SELECT FOR UPDATE resumes against its original snapshot and
// never sees the row the winner inserted, and on first contact there
// are no rows to lock at all, so both writers would seed the
// conversation.
func lockIdentity(ctx context.Context, tx pgx.Tx, email string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, email); err != nil {
		return fmt.Errorf("lock identity: %w", err)
	}
	return nil
}

// loadTurns reads an identity's full history inside the caller's
// transaction. Callers hold the identity's advisory lock.
func loadTurns(ctx context.Context, tx pgx.Tx, email string) (conversation.Conversation, error) {
	rows, err := tx.Query(ctx, `
		SELECT role, content
		FROM conversation_turns
		WHERE email = $1
		ORDER BY seq`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var conv conversation.Conversation
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		conv = append(conv, conversation.Turn{Role: conversation.Role(role), Content: content})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}
	return conv, nil
}
