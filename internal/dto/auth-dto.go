package dto

import "time"

// AuthClaims is the decoded payload of a bearer token.
type AuthClaims struct {
	Subject   string
	Email     string
	Nombre    string
	GoogleID  string
	GitHubID  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

type GitHubLoginRequest struct {
	Code string `json:"code"`
}

type LoginUser struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre,omitempty"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	GoogleID string `json:"googleId"`
	Nombre   string `json:"nombre"`
}
