package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/store"
)

// Listing caps: customers see at most their latest 100 orders, the admin
// dashboard at most the latest 500.
const (
	userOrderListCap  = 100
	adminOrderListCap = 500
)

// OrderRepo encapsulates all document operations on the `orders`
// collection.
type OrderRepo struct {
	c store.Collection
}

func NewOrderRepo(s store.Store) *OrderRepo {
	return &OrderRepo{c: s.Collection("orders")}
}

// Insert stores a new order.
func (r *OrderRepo) Insert(ctx context.Context, o *model.Order) error {
	return r.c.InsertOne(ctx, o)
}

// GetByID fetches an order by id.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (model.Order, error) {
	var o model.Order
	err := r.c.FindOne(ctx, bson.M{"id": id}, &o)
	return o, err
}

// ListByUser returns a user's orders, newest first.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	var out []model.Order
	err := r.c.Find(ctx, bson.M{"user_id": userID}, store.FindOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: userOrderListCap,
	}, &out)
	return out, err
}

// ListAll returns every order, newest first, for the admin dashboard.
func (r *OrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	err := r.c.Find(ctx, bson.M{}, store.FindOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: adminOrderListCap,
	}, &out)
	return out, err
}

// SetStatus updates an order's lifecycle status and reports whether the
// order existed.  Validation of the status value happens in the handler.
func (r *OrderRepo) SetStatus(ctx context.Context, id, status string) (bool, error) {
	matched, err := r.c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	return matched > 0, err
}

// MarkPaid records a confirmed payment: payment_status becomes "paid" and
// the order moves to "processing".  Setting the same target values twice
// is harmless, which keeps the poll/webhook race benign.
func (r *OrderRepo) MarkPaid(ctx context.Context, id string) (bool, error) {
	matched, err := r.c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"payment_status": model.PaymentStatusPaid,
		"status":         model.OrderStatusProcessing,
	}})
	return matched > 0, err
}
