// Package store defines the document-store port used by all repositories.
// Every persisted collection (users, products, orders, ...) is reached
// through this interface so that the concrete driver is injected once at
// process start instead of living in a package-level global.  Two adapters
// exist: a MongoDB adapter for production and an in-memory adapter used by
// the test suite.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("document not found")

// FindOptions carries the optional sort and limit parameters of a Find
// call.  A zero value means unsorted and unlimited.
type FindOptions struct {
	Sort  bson.D // e.g. bson.D{{Key: "created_at", Value: -1}}
	Limit int64  // 0 means no limit
}

// Collection exposes the document operations the application relies on.
// Filters and updates use bson.M so both adapters interpret the exact
// same query documents.  Updates are restricted to the $set and $inc
// operators, which is all the storefront ever issues.
type Collection interface {
	// FindOne decodes the first matching document into out or returns
	// ErrNotFound.
	FindOne(ctx context.Context, filter bson.M, out any) error
	// Find decodes all matching documents into out, which must be a
	// pointer to a slice.
	Find(ctx context.Context, filter bson.M, opts FindOptions, out any) error
	// InsertOne stores a single document.
	InsertOne(ctx context.Context, doc any) error
	// InsertMany stores a batch of documents.
	InsertMany(ctx context.Context, docs []any) error
	// UpdateOne applies update to the first matching document and
	// reports how many documents matched (0 or 1).
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (int64, error)
	// DeleteOne removes the first matching document and reports how
	// many documents were deleted (0 or 1).
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
	// Count returns the number of documents matching the filter.
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// Store hands out named collections.
type Store interface {
	Collection(name string) Collection
}
