package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Level       int       `json:"level"`
}

type UserResponse struct {
	ID     uuid.UUID      `json:"id"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Avatar *string        `json:"avatar,omitempty"`
	Roles  []RoleResponse `json:"roles,omitempty"`
}

// MeResponse wraps the current profile; User is null for anonymous callers.
type MeResponse struct {
	User *UserResponse `json:"user"`
}
