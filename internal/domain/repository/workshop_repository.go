package repository

import (
	"context"
	"errors"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWorkshopNotFound is returned when a workshop lookup does not resolve.
var ErrWorkshopNotFound = errors.New("workshop not found")

// WorkshopRepository defines the operations for workshop persistence.
type WorkshopRepository interface {
	// Create persists a new workshop.
	Create(ctx context.Context, workshop *entity.Workshop) error

	// FindByID retrieves a single workshop.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error)

	// ListAll returns the entire schedule ordered by date ascending.
	// The public calendar feed always projects the whole schedule.
	ListAll(ctx context.Context) ([]*entity.Workshop, error)

	// ListByArtist returns the artist's own workshops, date ascending.
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]*entity.Workshop, error)
}
