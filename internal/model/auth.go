package model

import "time"

// LoginRequest holds the credentials submitted by the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse is the payload of a successful /auth/login call.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}

// RegisterRequest holds the self-registration form fields.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required"`
	LastName string `json:"apellido"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"telefono"`
}

// ChangePasswordRequest holds the change-password form fields.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"password_actual" validate:"required"`
	NewPassword     string `json:"password_nueva" validate:"required,min=8"`
}

// TokenClaims is the subset of JWT claims the client reads for display.
// The token is never verified locally; the server is the authority.
type TokenClaims struct {
	UserID    int64
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the claims carry an expiry in the past.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
