package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore adapts a mongo.Database to the Store port.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps an already connected database handle.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Collection(name string) Collection {
	return &mongoCollection{coll: s.db.Collection(name)}
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, out any) error {
	err := c.coll.FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (c *mongoCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, out any) error {
	fo := options.Find()
	if len(opts.Sort) > 0 {
		fo.SetSort(opts.Sort)
	}
	if opts.Limit > 0 {
		fo.SetLimit(opts.Limit)
	}
	cur, err := c.coll.Find(ctx, filter, fo)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc any) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

func (c *mongoCollection) InsertMany(ctx context.Context, docs []any) error {
	_, err := c.coll.InsertMany(ctx, docs)
	return err
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (int64, error) {
	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *mongoCollection) Count(ctx context.Context, filter bson.M) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}
