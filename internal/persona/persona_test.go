package persona

import (
	"strings"
	"testing"

	"github.com/Hezron-Jahmia-Presci/customer-bot/internal/intent"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("prompt table is not total: %v", err)
	}
}

func TestPromptForEveryIntent(t *testing.T) {
	for _, in := range intent.All() {
		p := PromptFor(in)
		if p == "" {
			t.Errorf("empty prompt for %s", in)
		}
		if !strings.Contains(p, "Megan") {
			t.Errorf("prompt for %s does not establish the persona name", in)
		}
	}
}

func TestPromptForIdempotent(t *testing.T) {
	a := PromptFor(intent.Billing)
	b := PromptFor(intent.Billing)
	if a != b {
		t.Error("PromptFor is not stable for the same intent")
	}
}

func TestPromptForUnknownFallsBack(t *testing.T) {
	if got := PromptFor(intent.Intent("nonsense")); got != PromptFor(intent.General) {
		t.Errorf("unknown intent should use the general persona, got %q", got)
	}
}
