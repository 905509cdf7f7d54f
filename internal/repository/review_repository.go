package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/store"
)

// reviewFetchCap bounds how many reviews contribute to listings and to
// the derived rating figures.
const reviewFetchCap = 100

// ReviewRepo encapsulates all document operations on the `reviews`
// collection.  It also computes the derived rating figures; average
// rating and review count are never persisted on products.
type ReviewRepo struct {
	c store.Collection
}

func NewReviewRepo(s store.Store) *ReviewRepo {
	return &ReviewRepo{c: s.Collection("reviews")}
}

// ListByProduct returns up to 100 reviews for a product.  No ordering is
// guaranteed.
func (r *ReviewRepo) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	var out []model.Review
	err := r.c.Find(ctx, bson.M{"product_id": productID}, store.FindOptions{Limit: reviewFetchCap}, &out)
	return out, err
}

// Insert stores a review after verifying this user has not already
// reviewed the product.  Returns ErrDuplicateReview on a repeat attempt.
// The existence check and the insert are separate writes, so two
// concurrent submissions can slip through; that race is accepted.
func (r *ReviewRepo) Insert(ctx context.Context, review *model.Review) error {
	var existing model.Review
	err := r.c.FindOne(ctx, bson.M{"product_id": review.ProductID, "user_id": review.UserID}, &existing)
	if err == nil {
		return ErrDuplicateReview
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return r.c.InsertOne(ctx, review)
}

// RatingFor computes the arithmetic mean rating and the review count for
// a product from up to 100 of its reviews.  A product without reviews
// rates 0.0.
func (r *ReviewRepo) RatingFor(ctx context.Context, productID string) (float64, int, error) {
	reviews, err := r.ListByProduct(ctx, productID)
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, rev := range reviews {
		sum += rev.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews), nil
}
