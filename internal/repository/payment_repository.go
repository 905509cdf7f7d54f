package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/store"
)

// PaymentRepo encapsulates all document operations on the
// `payment_transactions` collection.  One row exists per checkout-session
// attempt; retried checkouts accumulate rows against the same order.
type PaymentRepo struct {
	c store.Collection
}

func NewPaymentRepo(s store.Store) *PaymentRepo {
	return &PaymentRepo{c: s.Collection("payment_transactions")}
}

// Insert stores a new transaction row.
func (r *PaymentRepo) Insert(ctx context.Context, t *model.PaymentTransaction) error {
	return r.c.InsertOne(ctx, t)
}

// GetBySession fetches the transaction recorded for a checkout session.
func (r *PaymentRepo) GetBySession(ctx context.Context, sessionID string) (model.PaymentTransaction, error) {
	var t model.PaymentTransaction
	err := r.c.FindOne(ctx, bson.M{"session_id": sessionID}, &t)
	return t, err
}

// SetStatusBySession updates the stored payment status for a session.
func (r *PaymentRepo) SetStatusBySession(ctx context.Context, sessionID, status string) error {
	_, err := r.c.UpdateOne(ctx, bson.M{"session_id": sessionID}, bson.M{"$set": bson.M{"payment_status": status}})
	return err
}

// MarkPaidByOrder marks the transaction belonging to an order as paid.
// Used by the webhook path, which only knows the order id from the event
// metadata.
func (r *PaymentRepo) MarkPaidByOrder(ctx context.Context, orderID string) error {
	_, err := r.c.UpdateOne(ctx, bson.M{"order_id": orderID}, bson.M{"$set": bson.M{"payment_status": model.PaymentStatusPaid}})
	return err
}
