package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The unique index on Email enforces that one email belongs to at most one account.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	BuyerProfile    *BuyerProfileModel    `gorm:"foreignKey:UserID"`
	ArtistProfile   *ArtistProfileModel   `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BuyerProfileModel mirrors the 'buyer_profiles' table. UserID references users.id (UUID).
type BuyerProfileModel struct {
	UserID          uuid.UUID `gorm:"primaryKey"`
	ShippingAddress string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerProfileModel) TableName() string {
	return "buyer_profiles"
}

// ArtistProfileModel mirrors the 'artist_profiles' table. UserID references users.id (UUID).
// ArtSampleURLs is stored as a JSONB column via the GORM JSON serializer.
type ArtistProfileModel struct {
	UserID            uuid.UUID `gorm:"primaryKey"`
	ArtistName        string    `gorm:"type:varchar(100);not null"`
	Specialization    string    `gorm:"type:varchar(100)"`
	City              string    `gorm:"type:varchar(100)"`
	PortfolioURL      string    `gorm:"type:varchar(255)"`
	Bio               string    `gorm:"type:text"`
	ContactNumber     string    `gorm:"type:varchar(50)"`
	Instagram         string    `gorm:"type:varchar(255)"`
	Facebook          string    `gorm:"type:varchar(255)"`
	Twitter           string    `gorm:"type:varchar(255)"`
	ProfilePictureURL string    `gorm:"type:varchar(255)"`
	ArtSampleURLs     []string  `gorm:"serializer:json;type:jsonb"`
	PushToken         string    `gorm:"type:varchar(255)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtistProfileModel) TableName() string {
	return "artist_profiles"
}
