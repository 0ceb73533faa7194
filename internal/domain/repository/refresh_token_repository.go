package repository

import (
	"context"
	"errors"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no session matches the token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for server-side session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new session record.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a non-expired session by token hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash removes the session matching the token hash.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID removes every session for the account.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
