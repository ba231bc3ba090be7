package dto

import "github.com/lamchun/academy-backend/internal/models"

// CreateUserRequest mirrors the POST /api/users body.
type CreateUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	Plan      string `json:"plan"`
	Country   string `json:"country"`
	IsActive  *bool  `json:"is_active"`
}

func (r *CreateUserRequest) ApplyDefaults() {
	if r.Plan == "" {
		r.Plan = models.PlanBasic
	}
	if r.IsActive == nil {
		active := true
		r.IsActive = &active
	}
}
