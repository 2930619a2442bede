package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/conversation"
	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/groq"
)

func TestGatewayReply(t *testing.T) {
	conv := conversation.Conversation{{Role: conversation.RoleUser, Content: "hi"}}

	cases := []struct {
		name   string
		client CompletionClient
		want   string
	}{
		{"success", &fakeCompletion{reply: "hello"}, "hello"},
		{"missing key", nil, FallbackMissingKey},
		{"transport failure", &fakeCompletion{err: errors.New("dial tcp: refused")}, FallbackCallFailed},
		{"no content", &fakeCompletion{err: groq.ErrNoContent}, FallbackNoContent},
		{"wrapped no content", &fakeCompletion{err: fmt.Errorf("complete: %w", groq.ErrNoContent)}, FallbackNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGateway(tc.client, discardLogger())
			if got := g.Reply(context.Background(), conv); got != tc.want {
				t.Errorf("Reply = %q, want %q", got, tc.want)
			}
		})
	}
}
