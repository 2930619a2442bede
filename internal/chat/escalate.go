package chat

import (
	"context"
	"time"

	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/conversation"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/events"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/intent"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/store"
)

// EscalationReply goes to the customer whenever a conversation is
// routed to a human, regardless of whether any side effect succeeds.
const EscalationReply = "Let me connect you to a human agent for better assistance. Please hold on..."

// escalate short-circuits completion: it persists an escalation
// snapshot, logs the user turn, notifies the webhook and the bus, and
// returns the fixed handoff reply. Each side effect is independent and
// best-effort; the reply is unconditional, so even a propagate-mode
// policy cannot change it.
func (s *Service) escalate(ctx context.Context, email, name, msg string, conv conversation.Conversation, res intent.Result) string {
	snap, err := conv.Snapshot()
	if err != nil {
		s.logger.Error("failed to serialize escalation snapshot", "email", email, "error", err)
	}

	if s.transcripts != nil {
		_ = s.policy.Do(OpEscalationRecord, func() error {
			id, err := s.transcripts.InsertEscalation(ctx, store.Escalation{
				Email:    email,
				Name:     name,
				Message:  msg,
				Snapshot: snap,
			})
			if err != nil {
				return err
			}
			s.logger.Info("escalation recorded", "email", email, "escalation_id", id)
			return nil
		})

		_ = s.policy.Do(OpChatLog, func() error {
			return s.transcripts.InsertChatLog(ctx, store.ChatLog{
				Email: email, Name: name, Role: conversation.RoleUser,
				Message: msg, Intent: res.Intent, Confidence: res.Confidence,
			})
		})
	}

	if s.notifier != nil {
		_ = s.policy.Do(OpWebhook, func() error {
			return s.notifier.NotifyEscalation(ctx, email, name, msg, conv)
		})
	}

	if s.bus != nil {
		_ = s.policy.Do(OpBusEvent, func() error {
			return s.bus.Publish(events.SubjectEscalated, map[string]any{
				"email":     email,
				"name":      name,
				"message":   msg,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	return EscalationReply
}
