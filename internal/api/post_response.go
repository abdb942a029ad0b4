package api

import (
	"time"

	"blog-api/internal/model"
)

// PostResponse is the public summary of a post. CreatedAt is ISO-8601.
// swagger:model api.PostResponse
type PostResponse struct {
	ID          int     `json:"id" example:"1"`
	Title       string  `json:"title" example:"Hello"`
	Description string  `json:"description" example:"First post"`
	Tags        *string `json:"tags" example:"intro,misc"`
	CreatedAt   string  `json:"created_at" example:"2025-05-01T15:04:05.123456Z"`
	Published   bool    `json:"published" example:"true"`
	Likes       int     `json:"likes" example:"3"`
}

func NewPostResponse(p model.Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
		Published:   p.Published,
		Likes:       p.Likes,
	}
}

func NewPostResponses(posts []model.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}
