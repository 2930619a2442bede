// Package chat is the turn pipeline: validate, classify, load the
// conversation, escalate or complete, persist, respond. Flow is
// strictly linear per request; no component calls back into an
// earlier one.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/conversation"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/events"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/intent"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/persona"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/store"
)

// ErrValidation marks a request the caller must correct. The API layer
// maps it to a 400.
var ErrValidation = errors.New("invalid chat request")

// defaultName stands in when the widget sends no display name.
const defaultName = "Unknown User"

// TranscriptStore persists the append-only record sets.
type TranscriptStore interface {
	InsertEscalation(ctx context.Context, e store.Escalation) (uuid.UUID, error)
	InsertChatLog(ctx context.Context, l store.ChatLog) error
}

// Notifier delivers the escalation webhook.
type Notifier interface {
	NotifyEscalation(ctx context.Context, email, name, message string, history conversation.Conversation) error
}

// Publisher is the optional event bus.
type Publisher interface {
	Publish(subject string, data any) error
}

// Service orchestrates one chat turn end to end. The transcript store,
// notifier, and bus are optional collaborators; the service runs
// without any of them, it just does less.
type Service struct {
	convs       conversation.Store
	transcripts TranscriptStore
	gateway     *Gateway
	notifier    Notifier
	bus         Publisher
	policy      *Policy
	logger      *slog.Logger
}

func NewService(convs conversation.Store, transcripts TranscriptStore, gateway *Gateway, notifier Notifier, bus Publisher, logger *slog.Logger) *Service {
	return &Service{
		convs:       convs,
		transcripts: transcripts,
		gateway:     gateway,
		notifier:    notifier,
		bus:         bus,
		policy:      NewPolicy(logger),
		logger:      logger,
	}
}

// TurnRequest is one incoming widget message. Email is the
// conversation partition key; it is not verified.
type TurnRequest struct {
	Message string
	Email   string
	Name    string
}

// HandleTurn runs the full pipeline for one message and returns the
// reply text. Only validation failures and an unreadable conversation
// surface as errors; every downstream failure degrades to a best-effort
// default reply.
func (s *Service) HandleTurn(ctx context.Context, req TurnRequest) (string, error) {
	msg := strings.TrimSpace(req.Message)
	email := strings.TrimSpace(req.Email)
	if msg == "" {
		return "", fmt.Errorf("%w: message is required", ErrValidation)
	}
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultName
	}

	res := intent.Classify(msg)
	s.logger.Info("message classified", "email", email, "intent", res.Intent, "confidence", res.Confidence)

	seed := conversation.Turn{Role: conversation.RoleSystem, Content: persona.PromptFor(res.Intent)}
	if _, err := s.convs.GetOrCreate(ctx, email, seed); err != nil {
		return "", fmt.Errorf("load conversation: %w", err)
	}
	conv, err := s.convs.Append(ctx, email, conversation.Turn{Role: conversation.RoleUser, Content: msg})
	if err != nil {
		return "", fmt.Errorf("append user turn: %w", err)
	}

	if res.Intent == intent.Escalate {
		return s.escalate(ctx, email, name, msg, conv, res), nil
	}

	reply := s.gateway.Reply(ctx, conv)

	if err := s.policy.Do(OpAssistantTurn, func() error {
		_, err := s.convs.Append(ctx, email, conversation.Turn{Role: conversation.RoleAssistant, Content: reply})
		return err
	}); err != nil {
		return "", err
	}

	if s.transcripts != nil {
		if err := s.policy.Do(OpChatLog, func() error {
			if err := s.transcripts.InsertChatLog(ctx, store.ChatLog{
				Email: email, Name: name, Role: conversation.RoleUser,
				Message: msg, Intent: res.Intent, Confidence: res.Confidence,
			}); err != nil {
				return err
			}
			return s.transcripts.InsertChatLog(ctx, store.ChatLog{
				Email: email, Name: name, Role: conversation.RoleAssistant,
				Message: reply, Intent: res.Intent, Confidence: res.Confidence,
			})
		}); err != nil {
			return "", err
		}
	}

	if s.bus != nil {
		if err := s.policy.Do(OpBusEvent, func() error {
			return s.bus.Publish(events.SubjectTurnLogged, map[string]any{
				"email":      email,
				"intent":     res.Intent.String(),
				"confidence": res.Confidence,
				"timestamp":  time.Now().UTC().Format(time.RFC3339),
			})
		}); err != nil {
			return "", err
		}
	}

	return reply, nil
}

// HandleStateless is the single-shot variant: no identity, no stored
// history, no transcript rows. The conversation is two turns built on
// the spot.
func (s *Service) HandleStateless(ctx context.Context, message string) (string, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return "", fmt.Errorf("%w: message is required", ErrValidation)
	}

	res := intent.Classify(msg)
	conv := conversation.Conversation{
		{Role: conversation.RoleSystem, Content: persona.PromptFor(res.Intent)},
		{Role: conversation.RoleUser, Content: msg},
	}
	return s.gateway.Reply(ctx, conv), nil
}

// Policy exposes the side-effect policy for configuration.
func (s *Service) Policy() *Policy {
	return s.policy
}
