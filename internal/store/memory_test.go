package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type testDoc struct {
	ID      string    `bson:"id"`
	Name    string    `bson:"name"`
	Qty     int       `bson:"qty"`
	Active  bool      `bson:"active"`
	Created time.Time `bson:"created_at"`
}

func seedDocs(t *testing.T, c Collection) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	docs := []any{
		testDoc{ID: "a", Name: "alpha", Qty: 5, Active: true, Created: base},
		testDoc{ID: "b", Name: "beta", Qty: 2, Active: false, Created: base.Add(time.Hour)},
		testDoc{ID: "c", Name: "gamma", Qty: 9, Active: true, Created: base.Add(2 * time.Hour)},
	}
	require.NoError(t, c.InsertMany(context.Background(), docs))
}

func TestMemoryFindOne(t *testing.T) {
	c := NewMemory().Collection("things")
	seedDocs(t, c)

	var got testDoc
	require.NoError(t, c.FindOne(context.Background(), bson.M{"id": "b"}, &got))
	assert.Equal(t, "beta", got.Name)
	assert.Equal(t, 2, got.Qty)

	err := c.FindOne(context.Background(), bson.M{"id": "zzz"}, &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFindFilterEquality(t *testing.T) {
	c := NewMemory().Collection("things")
	seedDocs(t, c)

	var active []testDoc
	require.NoError(t, c.Find(context.Background(), bson.M{"active": true}, FindOptions{}, &active))
	require.Len(t, active, 2)

	var none []testDoc
	require.NoError(t, c.Find(context.Background(), bson.M{"name": "missing"}, FindOptions{}, &none))
	assert.Empty(t, none)
}

func TestMemoryFindSortAndLimit(t *testing.T) {
	c := NewMemory().Collection("things")
	seedDocs(t, c)

	var newest []testDoc
	opts := FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}, Limit: 2}
	require.NoError(t, c.Find(context.Background(), bson.M{}, opts, &newest))
	require.Len(t, newest, 2)
	assert.Equal(t, "c", newest[0].ID)
	assert.Equal(t, "b", newest[1].ID)

	var byQty []testDoc
	require.NoError(t, c.Find(context.Background(), bson.M{}, FindOptions{Sort: bson.D{{Key: "qty", Value: 1}}}, &byQty))
	require.Len(t, byQty, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{byQty[0].ID, byQty[1].ID, byQty[2].ID})
}

func TestMemoryUpdateSetAndInc(t *testing.T) {
	c := NewMemory().Collection("things")
	seedDocs(t, c)

	matched, err := c.UpdateOne(context.Background(), bson.M{"id": "a"}, bson.M{"$set": bson.M{"name": "renamed"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	matched, err = c.UpdateOne(context.Background(), bson.M{"id": "a"}, bson.M{"$inc": bson.M{"qty": -3}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	var got testDoc
	require.NoError(t, c.FindOne(context.Background(), bson.M{"id": "a"}, &got))
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, 2, got.Qty)

	matched, err = c.UpdateOne(context.Background(), bson.M{"id": "zzz"}, bson.M{"$set": bson.M{"name": "x"}})
	require.NoError(t, err)
	assert.Zero(t, matched)
}

func TestMemoryDeleteAndCount(t *testing.T) {
	c := NewMemory().Collection("things")
	seedDocs(t, c)

	n, err := c.Count(context.Background(), bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	deleted, err := c.DeleteOne(context.Background(), bson.M{"id": "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = c.DeleteOne(context.Background(), bson.M{"id": "b"})
	require.NoError(t, err)
	assert.Zero(t, deleted)

	n, err = c.Count(context.Background(), bson.M{"active": true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryCollectionsAreIsolated(t *testing.T) {
	m := NewMemory()
	seedDocs(t, m.Collection("left"))

	n, err := m.Collection("right").Count(context.Background(), bson.M{})
	require.NoError(t, err)
	assert.Zero(t, n)
}
