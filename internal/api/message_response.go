package api

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

// swagger:model api.CreatePostResponse
type CreatePostResponse struct {
	Message string `json:"message" example:"Post created successfully"`
	ID      int    `json:"id" example:"1"`
}

// swagger:model api.LikeResponse
type LikeResponse struct {
	Message string `json:"message" example:"Post liked successfully"`
	Likes   int    `json:"likes" example:"1"`
}
