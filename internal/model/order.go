package model

import "time"

// Order lifecycle states.  Transitions are driven by the admin status
// endpoint; "processing" is also set automatically when a payment is
// confirmed.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment states stored on orders and payment transactions.  Provider
// specific intermediate values are passed through verbatim; "paid" is
// terminal.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusInitiated = "initiated"
	PaymentStatusPaid      = "paid"
)

// ValidOrderStatus reports whether s is one of the five order states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line item snapshot.  Name, prices and image are copied
// from the product at order time so later catalog edits do not rewrite
// order history.
type OrderItem struct {
	ProductID   string  `bson:"product_id" json:"product_id"`
	ProductName string  `bson:"product_name" json:"product_name"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	PriceBBD    float64 `bson:"price_bbd" json:"price_bbd"`
	PriceUSD    float64 `bson:"price_usd" json:"price_usd"`
	Image       string  `bson:"image" json:"image"`
}

// Order is a placed order in the `orders` collection.  Totals are rounded
// to two decimals at creation time.  UserEmail is denormalized so order
// exports do not need a user lookup.
type Order struct {
	ID              string      `bson:"id" json:"id"`
	UserID          string      `bson:"user_id" json:"user_id"`
	UserEmail       string      `bson:"user_email" json:"user_email"`
	Items           []OrderItem `bson:"items" json:"items"`
	TotalBBD        float64     `bson:"total_bbd" json:"total_bbd"`
	TotalUSD        float64     `bson:"total_usd" json:"total_usd"`
	ShippingAddress string      `bson:"shipping_address" json:"shipping_address"`
	City            string      `bson:"city" json:"city"`
	PostalCode      string      `bson:"postal_code" json:"postal_code"`
	Country         string      `bson:"country" json:"country"`
	Phone           string      `bson:"phone" json:"phone"`
	Notes           *string     `bson:"notes" json:"notes"`
	Status          string      `bson:"status" json:"status"`
	PaymentStatus   string      `bson:"payment_status" json:"payment_status"`
	PaymentMethod   string      `bson:"payment_method" json:"payment_method"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
}
