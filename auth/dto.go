// Package auth provides authentication and authorization functionality.
// This file, `dto.go` (Data Transfer Object), defines structures used for
// transferring data in API requests and responses related to authentication.
package auth

import "time"

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"strongpassword123"`
	Name     string `json:"name" example:"Ann"`
	Age      int    `json:"age" example:"30"`
	Gender   string `json:"gender" example:"f"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"strongpassword123"`
}

// UserResponse is the public view of a user returned by the API.
// It deliberately has no field for the password hash; the storage type and
// the response type are kept distinct so the hash cannot leak by accident.
type UserResponse struct {
	ID        string    `json:"id" example:"9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
	Email     string    `json:"email" example:"user@example.com"`
	Name      string    `json:"name" example:"Ann"`
	Age       int       `json:"age" example:"30"`
	Gender    string    `json:"gender" example:"f"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-15T10:30:00Z"`
}

// AuthResponse is returned on successful registration and login: a freshly
// issued access token plus the public view of the user it authenticates.
type AuthResponse struct {
	AccessToken string       `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string       `json:"token_type" example:"bearer"`
	User        UserResponse `json:"user"`
}
