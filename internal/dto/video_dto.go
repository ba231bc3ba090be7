package dto

import "github.com/lamchun/academy-backend/internal/models"

// CreateVideoRequest mirrors the POST /api/videos body. Unknown JSON fields
// are dropped on decode and never reach the stored record.
type CreateVideoRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	DurationSec  *int     `json:"duration_sec"`
	Level        string   `json:"level"`
	Topics       []string `json:"topics"`
	RequiresPlan string   `json:"requires_plan"`
}

// ApplyDefaults fills fields with declared defaults when absent from input.
func (r *CreateVideoRequest) ApplyDefaults() {
	if r.Level == "" {
		r.Level = models.LevelBeginner
	}
	if r.Topics == nil {
		r.Topics = []string{}
	}
	if r.RequiresPlan == "" {
		r.RequiresPlan = models.PlanBasic
	}
}
