package chat

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/conversation"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/groq"
)

// CompletionClient is the outbound model call. *groq.Client satisfies
// it; tests substitute fakes.
type CompletionClient interface {
	Complete(ctx context.Context, conv conversation.Conversation) (string, error)
}

// The literal fallback replies. They go to the customer verbatim, so
// the orchestrator never sees an error from the gateway.
const (
	FallbackMissingKey = "Missing API key."
	FallbackCallFailed = "Error talking to AI."
	FallbackNoContent  = "No response from AI."
)

// Gateway wraps the completion client with the service's fail-soft
// policy: one attempt, no retry, and a literal fallback string for
// every failure mode.
type Gateway struct {
	client CompletionClient // nil when no API key is configured
	logger *slog.Logger
}

func NewGateway(client CompletionClient, logger *slog.Logger) *Gateway {
	return &Gateway{client: client, logger: logger}
}

// Reply sends the full conversation to the model and returns the reply
// text, or a fallback string. It never returns an error and makes no
// outbound call when no client is configured.
func (g *Gateway) Reply(ctx context.Context, conv conversation.Conversation) string {
	if g.client == nil {
		g.logger.Error("completion requested without an API key")
		return FallbackMissingKey
	}

	reply, err := g.client.Complete(ctx, conv)
	if errors.Is(err, groq.ErrNoContent) {
		g.logger.Warn("completion returned no content")
		return FallbackNoContent
	}
	if err != nil {
		g.logger.Error("completion call failed", "error", err)
		return FallbackCallFailed
	}
	return reply
}
