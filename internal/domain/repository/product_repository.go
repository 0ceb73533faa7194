package repository

import (
	"context"
	"errors"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product lookup does not resolve.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter carries the independent optional catalogue filters. All
// supplied filters combine with logical AND; a nil/empty field imposes no
// constraint. Page and Limit are mandatory; the caller clamps them.
type ProductFilter struct {
	Categories  []entity.Category // Category membership.
	MinPrice    *float64          // Inclusive lower price bound.
	MaxPrice    *float64          // Inclusive upper price bound.
	MinRating   *float64          // Inclusive lower rating bound.
	ArtistNames []string          // Artist display-name membership.
	InStock     *bool             // Availability flag.
	Page        int               // 1-based page number.
	Limit       int               // Page size.
}

// ProductRepository defines the operations for catalogue persistence.
type ProductRepository interface {
	// FindByID retrieves a single product with its artist name resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns the filtered page plus the total match count.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product listing.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product listing.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically reduces quantityAvailable by qty and
	// clears the inStock flag when it reaches zero. Returns
	// ErrProductNotFound when the product is missing or the remaining
	// stock is insufficient.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}
