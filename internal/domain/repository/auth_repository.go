package repository

import (
	"context"
	"errors"

	"rangriti/internal/domain/entity"
)

// ErrAuthNotFound is returned when no credential record matches the lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves the credential record for an email login.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential record.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
