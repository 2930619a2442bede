package conversation

import "context"

// Store is keyed by the customer's email. Implementations must
// serialize GetOrCreate/Append per identity; ordering across
// identities is unspecified.
type Store interface {
	// GetOrCreate returns the conversation for email, creating it
	// seeded with the given system turn on first contact. The seed is
	// ignored for an existing conversation — a later message never
	// reseeds the system prompt.
	GetOrCreate(ctx context.Context, email string, seed Turn) (Conversation, error)

	// Append adds a turn to the end of the identity's conversation and
	// returns the full updated history.
	Append(ctx context.Context, email string, turn Turn) (Conversation, error)
}
