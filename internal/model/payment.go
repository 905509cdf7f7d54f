package model

import "time"

// PaymentTransaction records one checkout-session attempt in the
// `payment_transactions` collection.  An order accumulates a new row each
// time checkout is retried; SessionID identifies the hosted provider
// session.  PaymentStatus starts at "initiated" and is advanced by the
// status poll or the provider webhook, whichever observes "paid" first.
type PaymentTransaction struct {
	ID            string    `bson:"id" json:"id"`
	SessionID     string    `bson:"session_id" json:"session_id"`
	OrderID       string    `bson:"order_id" json:"order_id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	UserEmail     string    `bson:"user_email" json:"user_email"`
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	PaymentStatus string    `bson:"payment_status" json:"payment_status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
