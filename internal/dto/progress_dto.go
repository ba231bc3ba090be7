package dto

// UpsertProgressRequest mirrors the POST /api/progress body.
type UpsertProgressRequest struct {
	UserID          string  `json:"user_id"`
	VideoID         string  `json:"video_id"`
	Percent         float64 `json:"percent"`
	LastPositionSec int     `json:"last_position_sec"`
}

// Percent and LastPositionSec already zero-default through JSON decoding,
// which matches the declared defaults; nothing else to fill in.
func (r *UpsertProgressRequest) ApplyDefaults() {}
