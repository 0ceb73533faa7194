// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when an account is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single account by email, whichever profile
	// kind it carries. This is the "find by email across both account
	// kinds" lookup used by login and duplicate-email checks.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new account entity together with its profile.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing account entity and its profile.
	Update(ctx context.Context, user *entity.User) error
}
