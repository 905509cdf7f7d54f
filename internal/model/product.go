package model

import "time"

// Product represents a catalog item in the `products` collection.  Prices
// are carried in both Barbadian and US dollars as independent fields; one
// is never derived from the other.  The category is a free-form string
// (the storefront currently uses "resin", "soaps" and "candles" but the
// value is not enforced).  Rating figures are computed from reviews at
// read time and are deliberately not part of this struct.
type Product struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	PriceBBD    float64   `bson:"price_bbd" json:"price_bbd"`
	PriceUSD    float64   `bson:"price_usd" json:"price_usd"`
	Category    string    `bson:"category" json:"category"`
	Images      []string  `bson:"images" json:"images"`
	Stock       int       `bson:"stock" json:"stock"`
	Featured    bool      `bson:"featured" json:"featured"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
