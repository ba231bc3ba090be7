package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/models"
	"github.com/lamchun/academy-backend/internal/store"
	"github.com/lamchun/academy-backend/internal/store/memstore"
	"github.com/lamchun/academy-backend/internal/validation"
)

func TestForumCreatePostThenList(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewForumService(st)

	id, err := svc.CreatePost(ctx, &dto.CreateForumPostRequest{
		UserID:  "u1",
		Title:   "Elbow position in Bong Sau",
		Content: "My elbow keeps drifting out during the shift...",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	docs, err := svc.ListPosts(ctx, 50)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 post, got %d", len(docs))
	}

	rec, err := store.DocumentAs[models.ForumPost](docs[0])
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rec.Topics == nil || len(rec.Topics) != 0 {
		t.Errorf("topics = %#v, want empty list default", rec.Topics)
	}
}

func TestForumCreatePost_RequiredFields(t *testing.T) {
	svc := NewForumService(memstore.New())

	_, err := svc.CreatePost(context.Background(), &dto.CreateForumPostRequest{UserID: "u1"})
	var verr *validation.Errors
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"title", "content"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("expected error for %q, got %v", field, verr.Fields)
		}
	}
}
