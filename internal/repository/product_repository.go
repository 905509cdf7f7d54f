package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/store"
)

// productListCap bounds catalog listings; the storefront never pages.
const productListCap = 100

// ProductRepo encapsulates all document operations on the `products`
// collection.
type ProductRepo struct {
	c store.Collection
}

func NewProductRepo(s store.Store) *ProductRepo {
	return &ProductRepo{c: s.Collection("products")}
}

// Insert stores a new product.
func (r *ProductRepo) Insert(ctx context.Context, p *model.Product) error {
	return r.c.InsertOne(ctx, p)
}

// InsertMany stores a batch of products; used by the seed endpoint.
func (r *ProductRepo) InsertMany(ctx context.Context, products []model.Product) error {
	docs := make([]any, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	return r.c.InsertMany(ctx, docs)
}

// GetByID fetches a product by id.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.c.FindOne(ctx, bson.M{"id": id}, &p)
	return p, err
}

// List returns up to 100 products matching the optional equality filters.
// A nil filter is not applied.  Ordering is insertion order.
func (r *ProductRepo) List(ctx context.Context, category *string, featured *bool) ([]model.Product, error) {
	filter := bson.M{}
	if category != nil {
		filter["category"] = *category
	}
	if featured != nil {
		filter["featured"] = *featured
	}
	var out []model.Product
	err := r.c.Find(ctx, filter, store.FindOptions{Limit: productListCap}, &out)
	return out, err
}

// ApplyPartial sets only the provided fields on a product and reports
// whether the product existed.
func (r *ProductRepo) ApplyPartial(ctx context.Context, id string, fields bson.M) (bool, error) {
	matched, err := r.c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	return matched > 0, err
}

// Delete removes a product and reports whether it existed.  Reviews that
// reference the product are left in place.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.c.DeleteOne(ctx, bson.M{"id": id})
	return deleted > 0, err
}

// DecrementStock subtracts qty from a product's stock.  The write is
// unconditional; the caller is expected to have checked availability.
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	_, err := r.c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"stock": -qty}})
	return err
}

// Any reports whether the catalog contains at least one product.
func (r *ProductRepo) Any(ctx context.Context) (bool, error) {
	n, err := r.c.Count(ctx, bson.M{})
	return n > 0, err
}
