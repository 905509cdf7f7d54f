// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderPlacedEvent is published after an order document is inserted.  It
// carries enough information for downstream consumers to log, notify, or
// feed analytics without querying the primary database.
type OrderPlacedEvent struct {
	OrderID       string  `json:"order_id"`
	UserID        string  `json:"user_id"`
	UserEmail     string  `json:"user_email"`
	ItemCount     int     `json:"item_count"`
	TotalBBD      float64 `json:"total_bbd"`
	TotalUSD      float64 `json:"total_usd"`
	PaymentMethod string  `json:"payment_method"`
	PlacedAt      string  `json:"placed_at"`
}

// PaymentConfirmedEvent is published when an order's payment reaches
// "paid", whether observed by a status poll or by the provider webhook.
// Source records which path saw it first.
type PaymentConfirmedEvent struct {
	OrderID     string  `json:"order_id"`
	SessionID   string  `json:"session_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Source      string  `json:"source"` // "poll" or "webhook"
	ConfirmedAt string  `json:"confirmed_at"`
}
