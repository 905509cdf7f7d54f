package payment

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// ErrWebhookSecretMissing is returned when a webhook arrives but no
// signing secret was configured.  The webhook handler logs it and still
// acknowledges the delivery.
var ErrWebhookSecretMissing = errors.New("stripe webhook secret not configured")

// StripeProvider implements Provider on top of the Stripe-hosted checkout
// pages.  Each order is charged as a single line item carrying the USD
// order total.
type StripeProvider struct {
	api           *client.API
	webhookSecret string
}

// NewStripeProvider builds a provider from the secret API key and the
// webhook signing secret.  The key must be non-empty; callers decide what
// to do when Stripe is not configured at all.
func NewStripeProvider(apiKey, webhookSecret string) *StripeProvider {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeProvider{api: api, webhookSecret: webhookSecret}
}

func (p *StripeProvider) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(minorUnits(req.Amount)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.Description),
				},
			},
			Quantity: stripe.Int64(1),
		}},
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	s, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return Session{}, err
	}
	return Session{ID: s.ID, URL: s.URL}, nil
}

func (p *StripeProvider) SessionStatus(ctx context.Context, sessionID string) (Status, error) {
	params := &stripe.CheckoutSessionParams{Params: stripe.Params{Context: ctx}}
	s, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return Status{}, err
	}
	return Status{
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header and extracts the
// checkout session state from completion events.  Events the storefront
// does not care about come back with an empty PaymentStatus.
func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (WebhookEvent, error) {
	if p.webhookSecret == "" {
		return WebhookEvent{}, ErrWebhookSecretMissing
	}
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return WebhookEvent{}, err
	}
	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return WebhookEvent{}, err
		}
		return WebhookEvent{
			PaymentStatus: string(s.PaymentStatus),
			Metadata:      s.Metadata,
		}, nil
	}
	return WebhookEvent{}, nil
}

// minorUnits converts a major-unit amount to cents.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
