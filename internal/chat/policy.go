package chat

import (
	"fmt"
	"log/slog"
)

// Mode decides what happens when a side effect fails.
type Mode int

const (
	// Absorb logs the failure and continues. The customer still gets a
	// reply.
	Absorb Mode = iota
	// Propagate returns the failure to the caller.
	Propagate
)

// Names for the pipeline's side effects, used as policy keys and in
// failure logs.
const (
	OpAssistantTurn    = "assistant_turn"
	OpChatLog          = "chat_log"
	OpEscalationRecord = "escalation_record"
	OpWebhook          = "webhook"
	OpBusEvent         = "bus_event"
)

// Policy makes the pipeline's treatment of side-effect failures an
// explicit decision per operation instead of errors swallowed in
// passing. Every operation defaults to Absorb: transcript logging,
// webhooks, and bus events must never stop a customer from getting
// some reply.
type Policy struct {
	logger *slog.Logger
	modes  map[string]Mode
}

func NewPolicy(logger *slog.Logger) *Policy {
	return &Policy{logger: logger, modes: make(map[string]Mode)}
}

// SetMode overrides the default Absorb mode for one operation.
func (p *Policy) SetMode(op string, m Mode) {
	p.modes[op] = m
}

// Do runs the side effect and applies the operation's mode to its
// failure. Under Absorb the error is logged and nil is returned.
func (p *Policy) Do(op string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	if p.modes[op] == Propagate {
		return fmt.Errorf("%s: %w", op, err)
	}
	p.logger.Error("side effect failed", "op", op, "error", err)
	return nil
}
