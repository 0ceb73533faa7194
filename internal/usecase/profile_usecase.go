package usecase

import (
	"context"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries partial profile updates. Nil fields are left
// untouched; which fields apply depends on the account kind.
type UpdateProfileInput struct {
	Name *string `json:"name,omitempty"`

	// Buyer fields.
	ShippingAddress *string `json:"shippingAddress,omitempty"`

	// Artist fields.
	ArtistName        *string  `json:"artistName,omitempty"`
	Specialization    *string  `json:"specialization,omitempty"`
	City              *string  `json:"city,omitempty"`
	PortfolioURL      *string  `json:"portfolioUrl,omitempty"`
	Bio               *string  `json:"bio,omitempty"`
	ContactNumber     *string  `json:"contactNumber,omitempty"`
	Instagram         *string  `json:"instagram,omitempty"`
	Facebook          *string  `json:"facebook,omitempty"`
	Twitter           *string  `json:"twitter,omitempty"`
	ProfilePictureURL *string  `json:"profilePictureUrl,omitempty"`
	ArtSampleURLs     []string `json:"artSampleUrls,omitempty"`
	PushToken         *string  `json:"pushToken,omitempty"`
}

// ProfileUsecase defines the interface for profile read/update operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
