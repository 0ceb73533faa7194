// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. An email belongs to at most one account,
// and an account carries exactly one of the two profile kinds: a buyer
// profile or an artist profile. The two kinds are disjoint; attempting to
// register an existing email under the other kind is a conflict.
type User struct {
	ID            uuid.UUID      // Global unique identifier for the account.
	Email         string         // Login identifier. Unique, case-preserved.
	Name          string         // Full display name.
	BuyerProfile  *BuyerProfile  // Non-nil only for buyer accounts.
	ArtistProfile *ArtistProfile // Non-nil only for artist accounts.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Role returns the account kind derived from which profile is attached.
func (u *User) Role() Role {
	if u.ArtistProfile != nil {
		return RoleArtist
	}

	return RoleBuyer
}

// Roles returns the account kinds as a slice for token claims.
func (u *User) Roles() Roles {
	return Roles{u.Role()}
}

// IsArtist reports whether the account is an artist account.
func (u *User) IsArtist() bool {
	return u.ArtistProfile != nil
}

// BuyerProfile holds data specific to buyer accounts.
type BuyerProfile struct {
	UserID          uuid.UUID // Links this profile to its core User.
	ShippingAddress string    // Default shipping address for orders.
	UpdatedAt       time.Time
}

// ArtistProfile holds data specific to artist accounts: the public display
// name shown on listings plus gallery and contact attributes.
type ArtistProfile struct {
	UserID            uuid.UUID // Links this profile to its core User.
	ArtistName        string    // Public display name shown on products and workshops.
	Specialization    string    // Primary art form, e.g. "Pottery".
	City              string
	PortfolioURL      string
	Bio               string
	ContactNumber     string
	Instagram         string
	Facebook          string
	Twitter           string
	ProfilePictureURL string
	ArtSampleURLs     []string // Gallery sample image URLs.
	PushToken         string   // FCM device token for order notifications. Optional.
	UpdatedAt         time.Time
}
