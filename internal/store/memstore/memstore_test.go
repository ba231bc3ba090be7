package memstore

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestInsertAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	st := New()

	a, err := st.Insert(ctx, "video", bson.M{"title": "a"})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	b, err := st.Insert(ctx, "video", bson.M{"title": "b"})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if a == b {
		t.Errorf("identifiers must be unique, both %q", a)
	}
}

func TestFindExactMatchAndLimit(t *testing.T) {
	ctx := context.Background()
	st := New()

	for i := 0; i < 5; i++ {
		if _, err := st.Insert(ctx, "progress", bson.M{"user_id": "u1", "n": i}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	if _, err := st.Insert(ctx, "progress", bson.M{"user_id": "u2"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	docs, err := st.Find(ctx, "progress", bson.M{"user_id": "u1"}, 0)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(docs) != 5 {
		t.Errorf("expected 5 matches, got %d", len(docs))
	}

	docs, err = st.Find(ctx, "progress", bson.M{"user_id": "u1"}, 2)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("limit=2 returned %d", len(docs))
	}
}

func TestUpdateByIDSetsFields(t *testing.T) {
	ctx := context.Background()
	st := New()

	id, err := st.Insert(ctx, "progress", bson.M{"user_id": "u1", "percent": 10})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := st.UpdateByID(ctx, "progress", id, bson.M{"percent": 90}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	doc, err := st.FindOne(ctx, "progress", bson.M{"user_id": "u1"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	// $set merges: untouched fields survive.
	if doc["user_id"] != "u1" {
		t.Errorf("user_id lost on update: %v", doc["user_id"])
	}
	if got, ok := doc["percent"].(int32); !ok || got != 90 {
		t.Errorf("percent = %v (%T), want 90", doc["percent"], doc["percent"])
	}
}

func TestFindOneMissingReturnsNil(t *testing.T) {
	st := New()
	doc, err := st.FindOne(context.Background(), "video", bson.M{"title": "nope"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != nil {
		t.Errorf("expected nil document, got %v", doc)
	}
}

func TestDeleteBefore(t *testing.T) {
	ctx := context.Background()
	st := New()

	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := st.Insert(ctx, "systemlog", bson.M{"timestamp": old}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := st.Insert(ctx, "systemlog", bson.M{"timestamp": recent}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	deleted, err := st.DeleteBefore(ctx, "systemlog", "timestamp", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if got := st.Count("systemlog"); got != 1 {
		t.Errorf("remaining = %d, want 1", got)
	}
}
