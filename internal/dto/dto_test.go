package dto

import (
	"reflect"
	"testing"

	"github.com/lamchun/academy-backend/internal/models"
)

func TestCreateVideoRequest_ApplyDefaults(t *testing.T) {
	req := CreateVideoRequest{Title: "Chum Kiu walkthrough", URL: "https://cdn.example.com/ck"}
	req.ApplyDefaults()

	if req.Level != models.LevelBeginner {
		t.Errorf("Level = %q, want %q", req.Level, models.LevelBeginner)
	}
	if req.RequiresPlan != models.PlanBasic {
		t.Errorf("RequiresPlan = %q, want %q", req.RequiresPlan, models.PlanBasic)
	}
	if req.Topics == nil || len(req.Topics) != 0 {
		t.Errorf("Topics = %#v, want empty non-nil slice", req.Topics)
	}
}

func TestCreateVideoRequest_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	req := CreateVideoRequest{
		Title:        "t",
		URL:          "u",
		Level:        models.LevelAdvanced,
		Topics:       []string{"Biu Jee"},
		RequiresPlan: models.PlanVIP,
	}
	req.ApplyDefaults()

	if req.Level != models.LevelAdvanced || req.RequiresPlan != models.PlanVIP {
		t.Errorf("explicit values overwritten: level=%q plan=%q", req.Level, req.RequiresPlan)
	}
	if !reflect.DeepEqual(req.Topics, []string{"Biu Jee"}) {
		t.Errorf("Topics = %#v", req.Topics)
	}
}

func TestCreateUserRequest_ApplyDefaults(t *testing.T) {
	req := CreateUserRequest{Name: "n", Email: "n@example.com"}
	req.ApplyDefaults()

	if req.Plan != models.PlanBasic {
		t.Errorf("Plan = %q, want %q", req.Plan, models.PlanBasic)
	}
	if req.IsActive == nil || !*req.IsActive {
		t.Errorf("IsActive = %v, want default true", req.IsActive)
	}

	inactive := false
	req2 := CreateUserRequest{Name: "n", Email: "n@example.com", IsActive: &inactive}
	req2.ApplyDefaults()
	if *req2.IsActive {
		t.Error("explicit is_active=false overwritten by default")
	}
}

func TestCreateForumPostRequest_ApplyDefaults(t *testing.T) {
	req := CreateForumPostRequest{UserID: "u1", Title: "t", Content: "c"}
	req.ApplyDefaults()

	if req.Topics == nil || len(req.Topics) != 0 {
		t.Errorf("Topics = %#v, want empty non-nil slice", req.Topics)
	}
}
