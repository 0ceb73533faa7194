package repository

import (
	"context"
	"errors"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order lookup does not resolve.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for the append-only order ledger.
// Orders are created once and mutated only by status transitions.
type OrderRepository interface {
	// Create appends a new order to the ledger.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByBuyer returns the buyer's orders newest-first.
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, page, limit int) ([]*entity.Order, int64, error)

	// ListByArtist returns the artist's incoming orders newest-first.
	ListByArtist(ctx context.Context, artistID uuid.UUID, page, limit int) ([]*entity.Order, int64, error)

	// UpdateStatus persists a status transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
