package api

// swagger:model api.CreatePostRequest
type CreatePostRequest struct {
	Username    *string `json:"username" validate:"required" example:"alice"`
	Title       *string `json:"title" validate:"required,max=255" example:"Hello"`
	Description *string `json:"description" validate:"required" example:"First post"`
	Tags        *string `json:"tags" validate:"omitempty,max=255" example:"intro,misc"`
}
