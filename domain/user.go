package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
type User struct {
	ID        int64     // Unique identifier
	Username  string    // Login username (unique)
	Slug      string    // Public profile slug (unique)
	CreatedAt time.Time // Account creation timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetBySlug retrieves a user by the profile slug.
	// Returns ErrNotFound if the user doesn't exist.
	GetBySlug(ctx context.Context, slug string) (User, error)

	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)
}
