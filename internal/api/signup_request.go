package api

// Keys are pointers so an absent key can be told apart from an empty one.
// Field order is the order missing keys are reported in.
// swagger:model api.SignupRequest
type SignupRequest struct {
	Name     *string `json:"name" validate:"required,max=100" example:"Alice"`
	Email    *string `json:"email" validate:"required,max=100" example:"alice@example.com"`
	Mobile   *string `json:"mobile" validate:"required,max=20" example:"0912345678"`
	Username *string `json:"username" validate:"required,max=50" example:"alice"`
	Password *string `json:"password" validate:"required" example:"longpass1"`
}
