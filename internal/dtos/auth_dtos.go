package dtos

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
