package auth

import (
	"context"
	"errors"
)

// Store-level sentinel errors. The service layer translates these into
// apperror values with the right status classification.
var (
	// ErrDuplicateEmail is returned by CreateUser when a user with the same
	// email already exists. Implementations must detect this atomically
	// (unique constraint or equivalent insert-if-absent), not with a separate
	// existence check.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUserNotFound is returned by lookups that match no user.
	ErrUserNotFound = errors.New("user not found")
)

// UserStore is the persistence boundary for user records.
type UserStore interface {
	// CreateUser persists a new user. The caller supplies the id, hashed
	// password and timestamps; the store only rejects duplicates.
	CreateUser(ctx context.Context, user *User) error
	// GetUserByEmail returns the user with exactly the given email.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// GetUserByID returns the user with the given id.
	GetUserByID(ctx context.Context, id string) (*User, error)
}
