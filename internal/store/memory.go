package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store used by tests.  Documents are kept as
// bson.M maps produced by a marshal round trip, so the adapter sees the
// exact same field names and value types the MongoDB adapter would.  It
// interprets the filter/update subset the application issues: top-level
// equality filters, $set and $inc updates, and single-key sorts.
type Memory struct {
	mu    sync.RWMutex
	colls map[string][]bson.M
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{colls: map[string][]bson.M{}}
}

func (m *Memory) Collection(name string) Collection {
	return &memoryCollection{store: m, name: name}
}

type memoryCollection struct {
	store *Memory
	name  string
}

// toDoc converts an arbitrary document (struct or map) into bson.M via a
// marshal round trip.  This mirrors what the driver would store.
func toDoc(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeDoc copies a stored bson.M into the caller's value, again via a
// marshal round trip so struct tags apply.
func decodeDoc(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func (c *memoryCollection) docs() []bson.M {
	return c.store.colls[c.name]
}

func (c *memoryCollection) FindOne(_ context.Context, filter bson.M, out any) error {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	for _, d := range c.docs() {
		if matches(d, filter) {
			return decodeDoc(d, out)
		}
	}
	return ErrNotFound
}

func (c *memoryCollection) Find(_ context.Context, filter bson.M, opts FindOptions, out any) error {
	c.store.mu.RLock()
	var hits []bson.M
	for _, d := range c.docs() {
		if matches(d, filter) {
			hits = append(hits, d)
		}
	}
	c.store.mu.RUnlock()

	for _, s := range opts.Sort {
		key, desc := s.Key, false
		if n, ok := s.Value.(int); ok && n < 0 {
			desc = true
		}
		sort.SliceStable(hits, func(i, j int) bool {
			less := compareValues(hits[i][key], hits[j][key]) < 0
			if desc {
				return !less && compareValues(hits[i][key], hits[j][key]) != 0
			}
			return less
		})
	}
	if opts.Limit > 0 && int64(len(hits)) > opts.Limit {
		hits = hits[:opts.Limit]
	}

	// Decode into *[]T one element at a time so the element type's bson
	// tags are honored.
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: Find out must be a pointer to a slice, got %T", out)
	}
	slice := reflect.MakeSlice(v.Elem().Type(), 0, len(hits))
	elemType := v.Elem().Type().Elem()
	for _, d := range hits {
		elem := reflect.New(elemType)
		if err := decodeDoc(d, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	v.Elem().Set(slice)
	return nil
}

func (c *memoryCollection) InsertOne(_ context.Context, doc any) error {
	d, err := toDoc(doc)
	if err != nil {
		return err
	}
	c.store.mu.Lock()
	c.store.colls[c.name] = append(c.store.colls[c.name], d)
	c.store.mu.Unlock()
	return nil
}

func (c *memoryCollection) InsertMany(_ context.Context, docs []any) error {
	converted := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		d, err := toDoc(doc)
		if err != nil {
			return err
		}
		converted = append(converted, d)
	}
	c.store.mu.Lock()
	c.store.colls[c.name] = append(c.store.colls[c.name], converted...)
	c.store.mu.Unlock()
	return nil
}

func (c *memoryCollection) UpdateOne(_ context.Context, filter bson.M, update bson.M) (int64, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	for _, d := range c.docs() {
		if !matches(d, filter) {
			continue
		}
		if err := applyUpdate(d, update); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return 0, nil
}

func (c *memoryCollection) DeleteOne(_ context.Context, filter bson.M) (int64, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	docs := c.docs()
	for i, d := range docs {
		if matches(d, filter) {
			c.store.colls[c.name] = append(docs[:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *memoryCollection) Count(_ context.Context, filter bson.M) (int64, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	var n int64
	for _, d := range c.docs() {
		if matches(d, filter) {
			n++
		}
	}
	return n, nil
}

// matches reports whether doc satisfies every top-level equality clause in
// the filter.  This is the only filter form the repositories issue.
func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		if !valuesEqual(doc[key], want) {
			return false
		}
	}
	return true
}

// applyUpdate mutates doc in place according to a $set/$inc update document.
func applyUpdate(doc bson.M, update bson.M) error {
	for op, arg := range update {
		fields, err := toDoc(arg)
		if err != nil {
			return err
		}
		switch op {
		case "$set":
			for k, v := range fields {
				doc[k] = v
			}
		case "$inc":
			for k, v := range fields {
				doc[k] = asFloat(doc[k]) + asFloat(v)
			}
		default:
			return fmt.Errorf("store: unsupported update operator %q", op)
		}
	}
	return nil
}

// valuesEqual compares a stored value with a filter literal.  Numbers are
// compared as float64 because the bson round trip widens Go ints to int32
// or int64 depending on magnitude.
func valuesEqual(a, b any) bool {
	if af, aok := numeric(a); aok {
		bf, bok := numeric(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(normalize(a), normalize(b))
}

// compareValues orders two stored values for sorting.  It understands the
// types a created_at field can take after a round trip.
func compareValues(a, b any) int {
	if af, aok := numeric(a); aok {
		bf, _ := numeric(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as, _ := a.(string)
	bs, _ := b.(string)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case primitive.DateTime:
		return float64(n), true
	}
	return 0, false
}

func asFloat(v any) float64 {
	f, _ := numeric(v)
	return f
}

// normalize flattens bson container types so DeepEqual can compare values
// that took different routes through the codec.
func normalize(v any) any {
	switch t := v.(type) {
	case primitive.D:
		m := map[string]any{}
		for _, e := range t {
			m[e.Key] = normalize(e.Value)
		}
		return m
	case bson.M:
		m := map[string]any{}
		for k, val := range t {
			m[k] = normalize(val)
		}
		return m
	case primitive.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
