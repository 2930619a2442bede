package intent

// Intent is one label from the closed set of support intents.
type Intent string

const (
	Escalate     Intent = "escalate"
	Emergency    Intent = "emergency"
	Complaint    Intent = "complaint"
	Refund       Intent = "refund"
	Cancellation Intent = "cancellation"
	Billing      Intent = "billing"
	Payment      Intent = "payment"
	Invoice      Intent = "invoice"
	Subscription Intent = "subscription"
	Upgrade      Intent = "upgrade"
	Downgrade    Intent = "downgrade"
	Pricing      Intent = "pricing"
	Discount     Intent = "discount"
	OrderStatus  Intent = "order_status"
	Shipping     Intent = "shipping"
	Delivery     Intent = "delivery"
	Returns      Intent = "returns"
	Warranty     Intent = "warranty"
	ProductInfo  Intent = "product_info"
	Availability Intent = "availability"
	Account      Intent = "account"
	Password     Intent = "password"
	Privacy      Intent = "privacy"
	Technical    Intent = "technical"
	Bug          Intent = "bug"
	Outage       Intent = "outage"
	Feedback     Intent = "feedback"
	Hours        Intent = "business_hours"
	Greetings    Intent = "greetings"
	General      Intent = "general"
)

// All returns every intent label, in rule priority order with the
// fallback last. Persona validation iterates this.
func All() []Intent {
	return []Intent{
		Escalate, Emergency, Complaint, Refund, Cancellation,
		Billing, Payment, Invoice, Subscription, Upgrade,
		Downgrade, Pricing, Discount, OrderStatus, Shipping,
		Delivery, Returns, Warranty, ProductInfo, Availability,
		Account, Password, Privacy, Technical, Bug,
		Outage, Feedback, Hours, Greetings, General,
	}
}

func (i Intent) String() string {
	return string(i)
}
