package chat

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPolicyAbsorbLogsAndContinues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPolicy(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := p.Do(OpWebhook, func() error { return errors.New("boom") })
	if err != nil {
		t.Fatalf("absorb mode must swallow the error, got %v", err)
	}
	if !strings.Contains(buf.String(), "boom") || !strings.Contains(buf.String(), OpWebhook) {
		t.Errorf("absorbed failure was not logged: %s", buf.String())
	}
}

func TestPolicyPropagate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPolicy(slog.New(slog.NewJSONHandler(&buf, nil)))
	p.SetMode(OpChatLog, Propagate)

	err := p.Do(OpChatLog, func() error { return errors.New("boom") })
	if err == nil {
		t.Fatal("propagate mode must return the error")
	}
	if !strings.Contains(err.Error(), OpChatLog) {
		t.Errorf("propagated error should name the operation: %v", err)
	}
}

func TestPolicySuccess(t *testing.T) {
	p := NewPolicy(slog.Default())
	ran := false
	if err := p.Do(OpBusEvent, func() error { ran = true; return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Error("side effect did not run")
	}
}
