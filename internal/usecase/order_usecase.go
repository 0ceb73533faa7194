package usecase

import (
	"context"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// ListOrdersInput carries pagination for order history queries.
type ListOrdersInput struct {
	Page  int
	Limit int
}

// ListOrdersOutput is one page of the order ledger, newest first.
type ListOrdersOutput struct {
	Orders []*entity.Order
	Total  int64
	Page   int
	Limit  int
}

// OrderUsecase defines the interface for purchase and ledger operations.
type OrderUsecase interface {
	// BuyNow places one pending order for a single unit of the product at
	// its live price, and removes only that product's cart line if present.
	BuyNow(ctx context.Context, buyerID, productID uuid.UUID) (*entity.Order, error)

	// Checkout converts every cart line into an order at the line's
	// priceAtAddTime snapshot, then clears the cart. An empty cart is
	// rejected.
	Checkout(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// ListBuyerOrders returns the buyer's order history.
	ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, input *ListOrdersInput) (*ListOrdersOutput, error)

	// ListArtistOrders returns the artist's incoming orders.
	ListArtistOrders(ctx context.Context, artistID uuid.UUID, input *ListOrdersInput) (*ListOrdersOutput, error)

	// UpdateOrderStatus applies a status transition, restricted to the
	// owning artist and the legal transition graph.
	UpdateOrderStatus(ctx context.Context, artistID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
