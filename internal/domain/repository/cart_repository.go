package repository

import (
	"context"
	"errors"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartLineNotFound is returned when the product has no line in the cart.
// Callers treat it as a handled outcome, not a failure.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository defines the operations for cart-line persistence. Lines
// live in their own table keyed (buyer_id, product_id) so that concurrent
// adds resolve through an atomic upsert instead of a read-modify-write on
// the account document.
type CartRepository interface {
	// ListLines returns the buyer's current lines with product names and
	// images resolved, oldest first.
	ListLines(ctx context.Context, buyerID uuid.UUID) ([]*entity.CartLine, error)

	// UpsertLine inserts the line, or, when a line for the same product
	// already exists, atomically increments its quantity by the line's
	// quantity. The stored priceAtAddTime of an existing line is kept.
	UpsertLine(ctx context.Context, line *entity.CartLine) error

	// SetQuantity sets the line's quantity to qty. Returns
	// ErrCartLineNotFound when the product is not in the cart.
	SetQuantity(ctx context.Context, buyerID, productID uuid.UUID, qty int) error

	// RemoveLine deletes the line for the product. Returns
	// ErrCartLineNotFound when the product is not in the cart.
	RemoveLine(ctx context.Context, buyerID, productID uuid.UUID) error

	// Clear deletes every line in the buyer's cart.
	Clear(ctx context.Context, buyerID uuid.UUID) error
}
