package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Ownership is the artist_id
// foreign key; the artist display name is joined from artist_profiles on read.
// Image URLs and tags are stored as JSONB columns via the GORM JSON serializer.
type ProductModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ArtistID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Category          string    `gorm:"type:varchar(50);not null;index"`
	Description       string    `gorm:"type:text"`
	Images            []string  `gorm:"serializer:json;type:jsonb"`
	Price             float64   `gorm:"not null"`
	Rating            float64
	ReviewsCount      int
	InStock           bool `gorm:"not null;default:true"`
	QuantityAvailable int  `gorm:"not null;default:0"`
	Material          string `gorm:"type:varchar(100)"`
	Size              string `gorm:"type:varchar(100)"`
	OriginRegion      string `gorm:"type:varchar(100)"`
	Tags              []string `gorm:"serializer:json;type:jsonb"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
