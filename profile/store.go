package profile

import (
	"context"
	"errors"
)

// ErrProfileNotFound is returned by GetByUserID when the user has never
// submitted a profile.
var ErrProfileNotFound = errors.New("health profile not found")

// Store is the persistence boundary for health profiles.
type Store interface {
	// Upsert atomically creates the profile or replaces every field of the
	// existing one. On replace the original creation timestamp is preserved
	// and only the update timestamp moves. The returned bool is true when a
	// new record was created.
	Upsert(ctx context.Context, p *HealthProfile) (*HealthProfile, bool, error)
	// GetByUserID returns the profile owned by the given user.
	GetByUserID(ctx context.Context, userID string) (*HealthProfile, error)
}
