package dto

// CreateForumPostRequest mirrors the POST /api/forum/posts body.
type CreateForumPostRequest struct {
	UserID  string   `json:"user_id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Topics  []string `json:"topics"`
}

func (r *CreateForumPostRequest) ApplyDefaults() {
	if r.Topics == nil {
		r.Topics = []string{}
	}
}
