package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. ProductName, ArtistName and
// PriceAtPurchase are snapshots frozen at purchase time so the ledger stays
// stable when the catalogue changes later.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName     string    `gorm:"type:varchar(255);not null"`
	BuyerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ArtistID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ArtistName      string    `gorm:"type:varchar(100);not null"`
	Quantity        int       `gorm:"not null"`
	PriceAtPurchase float64   `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
