package model

import "time"

// Review is a customer rating of a product, stored in the `reviews`
// collection.  UserName is a snapshot taken at write time ("First L.")
// and is intentionally never synchronized with later account changes.
// At most one review is expected per (product, user) pair.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	ProductID string    `bson:"product_id" json:"product_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
