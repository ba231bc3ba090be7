package validation

import (
	"strings"
	"testing"

	"github.com/lamchun/academy-backend/internal/models"
)

func TestStruct_ProgressPercentBounds(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		wantErr bool
	}{
		{name: "zero", percent: 0},
		{name: "upper bound", percent: 100},
		{name: "mid", percent: 42.5},
		{name: "above range", percent: 150, wantErr: true},
		{name: "below range", percent: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Progress{UserID: "u1", VideoID: "v1", Percent: tt.percent}
			err := Struct(&p)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			verr, ok := err.(*Errors)
			if !ok {
				t.Fatalf("expected *Errors, got %T (%v)", err, err)
			}
			if _, ok := verr.Fields["percent"]; !ok {
				t.Fatalf("expected error for field %q, got %v", "percent", verr.Fields)
			}
		})
	}
}

func TestStruct_UserEmailFormat(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "user@example.com"},
		{name: "missing at sign", email: "user.example.com", wantErr: true},
		{name: "empty", email: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := models.User{Name: "Ip Man", Email: tt.email, Plan: models.PlanBasic}
			err := Struct(&u)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			verr, ok := err.(*Errors)
			if !ok {
				t.Fatalf("expected *Errors, got %T (%v)", err, err)
			}
			if _, ok := verr.Fields["email"]; !ok {
				t.Fatalf("expected error for field %q, got %v", "email", verr.Fields)
			}
		})
	}
}

func TestStruct_ReportsEveryFailingField(t *testing.T) {
	// Missing both required ids and an out-of-range percent: all three
	// fields must be reported, not just the first.
	p := models.Progress{Percent: 200, LastPositionSec: -1}
	err := Struct(&p)
	verr, ok := err.(*Errors)
	if !ok {
		t.Fatalf("expected *Errors, got %T (%v)", err, err)
	}
	for _, field := range []string{"user_id", "video_id", "percent", "last_position_sec"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("expected error for field %q, got %v", field, verr.Fields)
		}
	}
}

func TestStruct_EnumMembership(t *testing.T) {
	tests := []struct {
		name    string
		video   models.Video
		field   string
		wantErr bool
	}{
		{
			name:  "valid level",
			video: models.Video{Title: "Siu Nim Tao basics", URL: "https://cdn.example.com/v1", Level: "beginner", RequiresPlan: "BASIC"},
		},
		{
			name:    "invalid level",
			video:   models.Video{Title: "t", URL: "u", Level: "expert", RequiresPlan: "BASIC"},
			field:   "level",
			wantErr: true,
		},
		{
			name:    "invalid plan",
			video:   models.Video{Title: "t", URL: "u", Level: "beginner", RequiresPlan: "GOLD"},
			field:   "requires_plan",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.video)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			verr, ok := err.(*Errors)
			if !ok {
				t.Fatalf("expected *Errors, got %T (%v)", err, err)
			}
			msg, ok := verr.Fields[tt.field]
			if !ok {
				t.Fatalf("expected error for field %q, got %v", tt.field, verr.Fields)
			}
			if !strings.Contains(msg, "must be one of") {
				t.Errorf("expected enum message, got %q", msg)
			}
		})
	}
}

func TestErrors_ErrorStringIsDeterministic(t *testing.T) {
	e := &Errors{Fields: map[string]string{
		"percent": "must be less than or equal to 100",
		"email":   "must be a valid email address",
	}}
	want := "validation failed: email: must be a valid email address; percent: must be less than or equal to 100"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
