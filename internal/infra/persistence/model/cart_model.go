package model

import (
	"time"

	"github.com/google/uuid"
)

// CartLineModel mirrors the 'cart_lines' table. The composite unique index on
// (buyer_id, product_id) guarantees at most one line per product per buyer and
// backs the atomic upsert that merges concurrent adds of the same product.
type CartLineModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_buyer_product"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_buyer_product"`
	Quantity       int       `gorm:"not null"`
	PriceAtAddTime float64   `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
