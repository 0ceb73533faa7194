package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. Pending is initial;
// delivered and rejected are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is one of the enumeration values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected,
		OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusRejected
}

// CanTransitionTo reports whether the move from s to next is a legal step:
// pending -> accepted | rejected, accepted -> shipped, shipped -> delivered.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusAccepted || next == OrderStatusRejected
	case OrderStatusAccepted:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// Order is an append-only fact record of a purchase intent. It references
// the product, buyer and artist, but freezes the price and the artist's
// display name at creation time so later mutations to either do not
// retroactively alter the order.
type Order struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	ProductName     string // Snapshot of the product name at creation.
	BuyerID         uuid.UUID
	ArtistID        uuid.UUID
	ArtistName      string  // Snapshot of the artist display name at creation.
	Quantity        int     // At least 1.
	PriceAtPurchase float64 // Price snapshot at creation. Never recomputed.
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Total returns the derived order total. Never persisted.
func (o *Order) Total() float64 {
	return float64(o.Quantity) * o.PriceAtPurchase
}
