package ports

import (
	"context"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. A duplicate email surfaces as a
	// duplicate-identifier error.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by their unique email address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
