package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/store"
)

const contactListCap = 100

// ContactRepo encapsulates all document operations on the
// `contact_messages` collection.
type ContactRepo struct {
	c store.Collection
}

func NewContactRepo(s store.Store) *ContactRepo {
	return &ContactRepo{c: s.Collection("contact_messages")}
}

// Insert stores a submitted contact message.
func (r *ContactRepo) Insert(ctx context.Context, m *model.ContactMessage) error {
	return r.c.InsertOne(ctx, m)
}

// ListAll returns the latest messages, newest first.
func (r *ContactRepo) ListAll(ctx context.Context) ([]model.ContactMessage, error) {
	var out []model.ContactMessage
	err := r.c.Find(ctx, bson.M{}, store.FindOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: contactListCap,
	}, &out)
	return out, err
}
