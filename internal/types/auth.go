package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest represents the dashboard login request. The dashboard is gated
// by a single shared password, so no user identity is carried.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login response with the session token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
