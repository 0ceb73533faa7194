// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rangriti/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterBuyerInput defines the data required to register a new buyer account.
type RegisterBuyerInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ShippingAddress string `json:"shippingAddress"`
}

// RegisterArtistInput defines the data required to register a new artist account.
type RegisterArtistInput struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	ArtistName     string `json:"artistName"`
	Specialization string `json:"specialization"`
	City           string `json:"city"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutInput carries the refresh token to revoke. AllDevices revokes every
// session belonging to the same account.
type LogoutInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
	AllDevices   bool   `json:"allDevices"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
// Redirect is the client landing path for the account kind.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Redirect     string
	User         *entity.User
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterBuyer(ctx context.Context, input *RegisterBuyerInput) (*RegisterOutput, error)
	RegisterArtist(ctx context.Context, input *RegisterArtistInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
