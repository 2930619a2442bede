package intent

import (
	"regexp"
	"strings"
)

// Confidence attached to a classification. These are constants, not a
// model output: they only distinguish "a rule matched" from "fell
// through to the default". Nothing downstream branches on them.
const (
	MatchedConfidence  = 0.9
	FallbackConfidence = 0.3
)

// Result is a classified message.
type Result struct {
	Intent     Intent
	Confidence float64
}

type rule struct {
	re     *regexp.Regexp
	intent Intent
}

// rules is evaluated top to bottom and the first match wins, so order
// is part of the contract. Escalation and emergency come first because
// their vocabulary overlaps with almost every other rule ("my order is
// broken, get me a human" must escalate, not classify as order_status).
// Broad conversational rules sit at the bottom, just above the
// general fallback.
var rules = []rule{
	{regexp.MustCompile(`\b(human|agent|representative|real person|speak to (a |an )?(person|someone|manager)|talk to (a |an )?(person|someone|manager)|live support|customer (care|service) rep)\b`), Escalate},
	{regexp.MustCompile(`\b(emergency|urgent(ly)?|immediately|right now|asap|critical issue)\b`), Emergency},
	{regexp.MustCompile(`\b(complain|complaint|unacceptable|terrible|awful|worst|disappointed|angry|frustrated)\b`), Complaint},
	{regexp.MustCompile(`\b(refund|money back|reimburse(ment)?|charge ?back)\b`), Refund},
	{regexp.MustCompile(`\b(cancel(lation|led|ling)?|terminate my|close my account)\b`), Cancellation},
	{regexp.MustCompile(`\b(bill(ing|ed)?|overcharg(e|ed)|double charg(e|ed)|statement)\b`), Billing},
	{regexp.MustCompile(`\b(pay(ment)?|credit card|debit card|card declined|paypal|transaction)\b`), Payment},
	{regexp.MustCompile(`\b(invoice|receipt|vat|tax document)\b`), Invoice},
	{regexp.MustCompile(`\b(subscription|renew(al|ed)?|auto.?renew|membership|plan expires?)\b`), Subscription},
	{regexp.MustCompile(`\b(upgrade|higher (plan|tier)|premium plan|pro plan)\b`), Upgrade},
	{regexp.MustCompile(`\b(downgrade|lower (plan|tier)|cheaper plan|basic plan)\b`), Downgrade},
	{regexp.MustCompile(`\b(pric(e|es|ing)|cost|how much|quote)\b`), Pricing},
	{regexp.MustCompile(`\b(discount|coupon|promo( code)?|voucher|sale|deal)\b`), Discount},
	{regexp.MustCompile(`\b(order (status|number)|track(ing)?( my)? order|where is my order|my order)\b`), OrderStatus},
	{regexp.MustCompile(`\b(ship(ping|ped|ment)?|courier|dispatch(ed)?)\b`), Shipping},
	{regexp.MustCompile(`\b(deliver(y|ed|ing)?|arriv(e|al|ed|ing)|eta|package)\b`), Delivery},
	{regexp.MustCompile(`\b(return(s|ing)?( policy| label| it)?|send (it |this )?back|exchange)\b`), Returns},
	{regexp.MustCompile(`\b(warrant(y|ies)|guarantee|repair|replacement)\b`), Warranty},
	{regexp.MustCompile(`\b(product (info|details|specs?)|specification|spec sheet|how does .+ work|what does .+ do)\b`), ProductInfo},
	{regexp.MustCompile(`\b(in stock|out of stock|availab(le|ility)|restock|back.?order)\b`), Availability},
	{regexp.MustCompile(`\b(my account|profile|sign.?up|register|update my (email|details|address))\b`), Account},
	{regexp.MustCompile(`\b(password|locked out|can.?t (log|sign) ?in|login|log in)\b`), Password},
	{regexp.MustCompile(`\b(privacy|gdpr|personal data|delete my data|data protection)\b`), Privacy},
	{regexp.MustCompile(`\b(technical|troubleshoot(ing)?|install(ation)?|configure|setup|set up|integration|api key)\b`), Technical},
	{regexp.MustCompile(`\b(bug|error|crash(es|ed|ing)?|broken|glitch|(not|isn.?t|doesn.?t) work(ing)?)\b`), Bug},
	{regexp.MustCompile(`\b(outage|down(time)?|offline|unavailable|can.?t (reach|connect|access))\b`), Outage},
	{regexp.MustCompile(`\b(feedback|suggestion|feature request|review|testimonial)\b`), Feedback},
	{regexp.MustCompile(`\b(opening hours|business hours|open (today|tomorrow|on)|what time (do you|are you)|holiday hours)\b`), Hours},
	{regexp.MustCompile(`\b(hi|hii+|hello|hey|howdy|good (morning|afternoon|evening)|greetings)\b`), Greetings},
}

// Classify maps raw message text to an intent label. The input is
// lower-cased before matching. Pure function, no side effects.
func Classify(text string) Result {
	msg := strings.ToLower(text)
	for _, r := range rules {
		if r.re.MatchString(msg) {
			return Result{Intent: r.intent, Confidence: MatchedConfidence}
		}
	}
	return Result{Intent: General, Confidence: FallbackConfidence}
}
