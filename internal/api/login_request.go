package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username *string `json:"username" validate:"required" example:"alice"`
	Password *string `json:"password" validate:"required" example:"longpass1"`
}
