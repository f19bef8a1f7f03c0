// Package auth contains authentication and authorization logic: password
// hashing, token issuance and verification, user registration and login, and
// the request middleware that resolves a bearer token to a stored user.
// This file defines the User model as stored in the database.
package auth

import "time"

// User represents a user record as persisted in the users table.
// The hashed password never leaves the process: `json:"-"` keeps it out of
// any serialized output, and API responses use UserResponse instead of this
// type entirely.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Do not expose hashed password
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Public converts the stored user to its public-safe view.
func (u *User) Public() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Age:       u.Age,
		Gender:    u.Gender,
		CreatedAt: u.CreatedAt,
	}
}
