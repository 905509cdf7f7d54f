package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/store"
)

// UserRepo encapsulates all document operations on the `users` collection.
type UserRepo struct {
	c store.Collection
}

// NewUserRepo constructs a UserRepo over the given store.  This allows
// dependency injection of the document store in tests and at startup.
func NewUserRepo(s store.Store) *UserRepo {
	return &UserRepo{c: s.Collection("users")}
}

// Create inserts the user after checking the email is not taken.  The
// email is matched exactly as stored (case-sensitive).  Returns
// ErrEmailExists when a user with the same address is already present.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	var existing model.User
	err := r.c.FindOne(ctx, bson.M{"email": u.Email}, &existing)
	if err == nil {
		return ErrEmailExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return r.c.InsertOne(ctx, u)
}

// GetByEmail fetches a user by exact email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.c.FindOne(ctx, bson.M{"email": email}, &u)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.c.FindOne(ctx, bson.M{"id": id}, &u)
	return u, err
}

// HasAdmin reports whether any admin account exists.  Used by the
// bootstrap endpoint to make admin setup a one-shot operation.
func (r *UserRepo) HasAdmin(ctx context.Context) (bool, error) {
	n, err := r.c.Count(ctx, bson.M{"is_admin": true})
	return n > 0, err
}
