// Package memstore is an in-memory Store double for tests. It mimics the
// observable behavior of the Mongo gateway: assigned ObjectID identifiers,
// exact-match filters, insertion order, $set updates.
package memstore

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu          sync.Mutex
	collections map[string][]bson.M
}

func New() *Store {
	return &Store{collections: make(map[string][]bson.M)}
}

func (s *Store) Insert(_ context.Context, collection string, doc any) (string, error) {
	d, err := toDocument(doc)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID()
	d["_id"] = id
	s.collections[collection] = append(s.collections[collection], d)
	return id.Hex(), nil
}

func (s *Store) InsertMany(ctx context.Context, collection string, docs []any) error {
	for _, doc := range docs {
		if _, err := s.Insert(ctx, collection, doc); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Find(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]bson.M, 0)
	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		out = append(out, clone(doc))
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (s *Store) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return clone(doc), nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateByID(_ context.Context, collection, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if doc["_id"] == oid {
			set, err := toDocument(fields)
			if err != nil {
				return err
			}
			for k, v := range set {
				doc[k] = v
			}
			return nil
		}
	}
	return nil
}

func (s *Store) DeleteBefore(_ context.Context, collection, field string, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]bson.M, 0)
	var deleted int64
	for _, doc := range s.collections[collection] {
		if ts, ok := docTime(doc[field]); ok && ts.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	s.collections[collection] = kept
	return deleted, nil
}

func (s *Store) Collections(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Ping(context.Context) error { return nil }

// Count reports how many documents a collection holds. Test helper only.
func (s *Store) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

// toDocument normalizes structs and maps through a bson round trip so stored
// values carry the same types the Mongo driver would store.
func toDocument(doc any) (bson.M, error) {
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

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

func equal(got, want any) bool {
	if g, ok := docTime(got); ok {
		if w, ok := docTime(want); ok {
			return g.Equal(w)
		}
	}
	return reflect.DeepEqual(got, want)
}

func docTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}

func clone(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
