package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/store"
)

// SettingsRepo encapsulates access to the singleton document in the
// `site_settings` collection, keyed by model.SiteSettingsID.
type SettingsRepo struct {
	c store.Collection
}

func NewSettingsRepo(s store.Store) *SettingsRepo {
	return &SettingsRepo{c: s.Collection("site_settings")}
}

// Get fetches the settings document.  Returns store.ErrNotFound when it
// has not been created yet.
func (r *SettingsRepo) Get(ctx context.Context) (model.SiteSettings, error) {
	var s model.SiteSettings
	err := r.c.FindOne(ctx, bson.M{"id": model.SiteSettingsID}, &s)
	return s, err
}

// Insert persists a full settings document.
func (r *SettingsRepo) Insert(ctx context.Context, s *model.SiteSettings) error {
	return r.c.InsertOne(ctx, s)
}

// InsertFields persists a partial settings document built from an update
// payload.  Fields the payload never mentioned stay absent and read back
// as zero values until set.
func (r *SettingsRepo) InsertFields(ctx context.Context, fields bson.M) error {
	return r.c.InsertOne(ctx, fields)
}

// Update sets the provided top-level fields on the settings document and
// reports whether it existed.  Sub-objects arrive as complete documents,
// so a present sub-object is replaced wholesale.
func (r *SettingsRepo) Update(ctx context.Context, fields bson.M) (bool, error) {
	matched, err := r.c.UpdateOne(ctx, bson.M{"id": model.SiteSettingsID}, bson.M{"$set": fields})
	return matched > 0, err
}
