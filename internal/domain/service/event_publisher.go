package service

import (
	"context"
)

// OrderEvent is the message published when an order is appended to the
// ledger. Downstream consumers (fulfilment dashboards, analytics) subscribe
// to it instead of polling the ledger.
type OrderEvent struct {
	RequestID       string  `json:"request_id,omitempty"` // For distributed tracing
	OrderID         string  `json:"order_id"`
	ProductID       string  `json:"product_id"`
	BuyerID         string  `json:"buyer_id"`
	ArtistID        string  `json:"artist_id"`
	ArtistName      string  `json:"artist_name"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	Status          string  `json:"status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async consumers
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
