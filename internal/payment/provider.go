// Package payment wraps the hosted checkout provider behind a small
// interface so order handlers can be exercised in tests with a fake and
// so the Stripe SDK stays out of the handler layer.
package payment

import "context"

// SessionRequest describes a hosted checkout session to create.  Amount
// is in major currency units (e.g. 42.50 USD); the adapter converts to
// the provider's minor-unit representation.
type SessionRequest struct {
	Amount      float64
	Currency    string
	Description string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// Session identifies a created checkout session.  URL is where the
// customer is redirected to pay.
type Session struct {
	ID  string
	URL string
}

// Status is the live state of a checkout session as reported by the
// provider.  PaymentStatus values are passed through verbatim; "paid" is
// the one the storefront acts on.  AmountTotal is in minor units.
type Status struct {
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
}

// WebhookEvent is a verified provider notification.  Metadata carries the
// values attached at session creation, including the order id.
type WebhookEvent struct {
	PaymentStatus string
	Metadata      map[string]string
}

// Provider is the checkout capability used by the order handlers.
type Provider interface {
	CreateSession(ctx context.Context, req SessionRequest) (Session, error)
	SessionStatus(ctx context.Context, sessionID string) (Status, error)
	// ParseWebhook verifies the signature on a raw webhook body and
	// extracts the event.  Implementations must reject unsigned or
	// tampered payloads.
	ParseWebhook(payload []byte, signature string) (WebhookEvent, error)
}
