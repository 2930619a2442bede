// Package notify posts escalation notifications to a configured
// webhook. Delivery is best-effort; the caller decides what to do with
// a failure (in practice: log and continue).
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/conversation"
)

type Webhook struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewWebhook(url string, logger *slog.Logger) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type payload struct {
	Email   string                    `json:"email"`
	Name    string                    `json:"name"`
	Message string                    `json:"message"`
	History conversation.Conversation `json:"history"`
}

// NotifyEscalation POSTs the escalation payload to the webhook. No
// response contract is enforced beyond a 2xx status; the body is
// discarded.
func (w *Webhook) NotifyEscalation(ctx context.Context, email, name, message string, history conversation.Conversation) error {
	body, err := json.Marshal(payload{
		Email:   email,
		Name:    name,
		Message: message,
		History: history,
	})
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}

	w.logger.Info("escalation webhook delivered", "email", email)
	return nil
}
