package usecase

import (
	"context"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// CartView is the read projection of a buyer's cart: the lines plus totals
// derived fresh from them.
type CartView struct {
	Lines  []*entity.CartLine
	Totals entity.Totals
}

// UpdateCartInput sets the quantity of one line. A target quantity of zero
// or less removes the line.
type UpdateCartInput struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// CartUsecase defines the interface for cart operations. Every operation is
// scoped to the acting buyer's ID; there is no cross-buyer access path.
type CartUsecase interface {
	// GetCart returns the buyer's current cart with derived totals.
	GetCart(ctx context.Context, buyerID uuid.UUID) (*CartView, error)

	// AddToCart adds one unit of the product, merging into an existing
	// line atomically when present. Returns the refreshed cart.
	AddToCart(ctx context.Context, buyerID, productID uuid.UUID) (*CartView, error)

	// UpdateCart sets a line's quantity (≤0 removes the line). A missing
	// line is a handled outcome; the refreshed cart is returned either way.
	UpdateCart(ctx context.Context, buyerID uuid.UUID, input *UpdateCartInput) (*CartView, error)
}
