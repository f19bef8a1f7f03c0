// Package auth, as part of the authentication module.
// This file provides helpers for carrying the resolved user through the
// request context. The middleware stores the full user record, so handlers
// receive an identity that is known to exist at request time, not just a
// token subject.
package auth

import (
	"context"
)

// contextKey is a custom type for context keys. Using a package-private type
// prevents collisions with keys defined elsewhere.
type contextKey string

const (
	userContextKey contextKey = "auth_user"
)

// NewContextWithUser returns a child context carrying the resolved user.
func NewContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext extracts the resolved user stored by the authentication
// middleware. The second return value reports whether a user was present.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey).(*User)
	return user, ok
}
