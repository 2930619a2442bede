package intent

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want Intent
	}{
		{"I want to talk to a human agent", Escalate},
		{"get me a real person please", Escalate},
		{"this is urgent, fix it immediately", Emergency},
		{"I want to file a complaint, this is unacceptable", Complaint},
		{"I want my money back", Refund},
		{"please cancel my subscription", Cancellation},
		{"I was double charged this month", Billing},
		{"my credit card was declined", Payment},
		{"can you send me an invoice", Invoice},
		{"when does my plan expire?", Subscription},
		{"I'd like to upgrade to the premium plan", Upgrade},
		{"move me to a cheaper plan", Downgrade},
		{"how much does it cost?", Pricing},
		{"do you have a promo code?", Discount},
		{"where is my order?", OrderStatus},
		{"has it been shipped yet?", Shipping},
		{"when will the package arrive?", Delivery},
		{"I want to return it", Returns},
		{"is this covered by warranty?", Warranty},
		{"what does the deluxe model do exactly?", ProductInfo},
		{"is the blue one in stock?", Availability},
		{"I need to update my email on my account", Account},
		{"I forgot my password", Password},
		{"please delete my data under GDPR", Privacy},
		{"how do I configure the integration?", Technical},
		{"the app keeps crashing", Bug},
		{"is the site down? I can't connect", Outage},
		{"I have a feature request", Feedback},
		{"what are your opening hours?", Hours},
		{"hi there", Greetings},
		{"blorp flibble quux", General},
		{"", General},
	}

	for _, tc := range cases {
		got := Classify(tc.text)
		if got.Intent != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.text, got.Intent, tc.want)
		}
	}
}

func TestClassifyEscalatePrecedence(t *testing.T) {
	// Escalation vocabulary wins no matter what other rule vocabulary
	// follows it in the message.
	cases := []string{
		"I want a human, also where is my order",
		"talk to someone about my refund and my password",
		"hello, connect me to a real person about billing",
		"agent please, the app is broken",
	}
	for _, text := range cases {
		if got := Classify(text); got.Intent != Escalate {
			t.Errorf("Classify(%q) = %s, want escalate", text, got.Intent)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "hello" and "cancel" both match a rule; cancellation is ordered
	// before greetings so it wins.
	got := Classify("hello, I want to cancel")
	if got.Intent != Cancellation {
		t.Errorf("expected cancellation, got %s", got.Intent)
	}
}

func TestClassifyPasswordVocabulary(t *testing.T) {
	// "forgot" and "reset" on their own are everyday words; only
	// credential vocabulary routes to the password intent.
	cases := []struct {
		text string
		want Intent
	}{
		{"I forgot to mention something earlier", General},
		{"please reset the counter", General},
		{"I need a password reset", Password},
		{"I forgot my login", Password},
		{"I'm locked out", Password},
	}
	for _, tc := range cases {
		if got := Classify(tc.text); got.Intent != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.text, got.Intent, tc.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("I FORGOT MY PASSWORD"); got.Intent != Password {
		t.Errorf("expected password, got %s", got.Intent)
	}
}

func TestClassifyConfidence(t *testing.T) {
	if got := Classify("hi there"); got.Confidence != MatchedConfidence {
		t.Errorf("matched rule should carry %v, got %v", MatchedConfidence, got.Confidence)
	}
	if got := Classify("zzzz"); got.Confidence != FallbackConfidence {
		t.Errorf("fallback should carry %v, got %v", FallbackConfidence, got.Confidence)
	}
}

func TestClassifyPure(t *testing.T) {
	a := Classify("I forgot my password")
	b := Classify("I forgot my password")
	if a != b {
		t.Errorf("classification is not stable: %+v vs %+v", a, b)
	}
}
