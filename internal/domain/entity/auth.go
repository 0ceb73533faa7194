// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the credential provider for email/password login.
const ProviderTypeEmail = "email"

// Authentication represents a single login credential for an account.
type Authentication struct {
	ID             uuid.UUID // Unique ID for this credential record.
	UserID         uuid.UUID // Links this credential to the User it belongs to.
	Provider       string    // Credential provider; only "email" is supported.
	ProviderUserID string    // The login identifier at the provider, i.e. the email address.
	PasswordHash   string    // bcrypt hash of the password.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, server-side session record.
// It is used to obtain a new access token after the old one expires.
type RefreshToken struct {
	ID        uuid.UUID // Unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this session expires and becomes invalid.
	CreatedAt time.Time
}
