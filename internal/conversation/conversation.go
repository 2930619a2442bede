// Package conversation holds the per-customer message history: an
// ordered list of role-tagged turns seeded with a persona system
// prompt. The Store interface serializes access per identity so two
// requests for the same email cannot interleave an append.
package conversation

import (
	"encoding/json"
	"fmt"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message within a conversation. Immutable once appended.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered turn sequence. Invariant: non-empty, the
// first turn is the system prompt chosen when the conversation was
// created, and it is never replaced.
type Conversation []Turn

// Snapshot serializes the conversation for an escalation record or a
// webhook payload.
func (c Conversation) Snapshot() ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal conversation: %w", err)
	}
	return data, nil
}

// ParseSnapshot restores a conversation from its serialized form.
func ParseSnapshot(data []byte) (Conversation, error) {
	var c Conversation
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal conversation: %w", err)
	}
	return c, nil
}
