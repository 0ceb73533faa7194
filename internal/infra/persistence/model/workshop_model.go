package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkshopModel mirrors the 'workshops' table. ArtistName is frozen at
// creation time alongside the artist_id foreign key.
type WorkshopModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ArtistID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ArtistName      string    `gorm:"type:varchar(100);not null"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	Date            time.Time `gorm:"type:date;not null;index"`
	StartTime       string    `gorm:"type:varchar(10);not null"`
	EndTime         string    `gorm:"type:varchar(10);not null"`
	Location        string    `gorm:"type:varchar(255);not null;default:'Online'"`
	MaxParticipants int       `gorm:"not null"`
	Price           float64   `gorm:"not null"`
	Category        string    `gorm:"type:varchar(50);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkshopModel) TableName() string {
	return "workshops"
}
