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

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewUserService(st)

	id, err := svc.Create(ctx, &dto.CreateUserRequest{Name: "Bruce", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	docs, err := svc.List(ctx, 50)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 user, got %d", len(docs))
	}

	rec, err := store.DocumentAs[models.User](docs[0])
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rec.Plan != models.PlanBasic {
		t.Errorf("plan = %q, want default %q", rec.Plan, models.PlanBasic)
	}
	if !rec.IsActive {
		t.Error("is_active should default to true")
	}
}

func TestUserCreate_RejectsMalformedEmail(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewUserService(st)

	_, err := svc.Create(ctx, &dto.CreateUserRequest{Name: "Bruce", Email: "user.example.com"})
	var verr *validation.Errors
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["email"]; !ok {
		t.Errorf("expected error referencing email, got %v", verr.Fields)
	}
	if got := st.Count(models.CollectionUser); got != 0 {
		t.Errorf("rejected write must not persist, found %d records", got)
	}
}
