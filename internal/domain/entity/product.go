package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of product categories in the catalogue.
type Category string

const (
	CategoryPainting  Category = "Painting"
	CategoryPottery   Category = "Pottery"
	CategorySculpture Category = "Sculpture"
	CategoryHandloom  Category = "Handloom"
	CategoryWoodcraft Category = "Woodcraft"
	CategoryOther     Category = "Other"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the closed enumeration values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPainting, CategoryPottery, CategorySculpture,
		CategoryHandloom, CategoryWoodcraft, CategoryOther:
		return true
	default:
		return false
	}
}

// Product is a catalogue listing owned by exactly one artist account.
// ArtistName is resolved from the owning artist's profile on read; the
// stored linkage is the ArtistID foreign key.
type Product struct {
	ID                uuid.UUID
	ArtistID          uuid.UUID // Owning artist account.
	ArtistName        string    // Display name of the owning artist, resolved on read.
	Name              string
	Category          Category
	Description       string
	Images            []string // At least one image URL is required.
	Price             float64  // Non-negative, in whole currency units.
	Rating            float64  // Average rating in [0, 5].
	ReviewsCount      int
	InStock           bool
	QuantityAvailable int
	Material          string
	Size              string // e.g. "12x18 inches", or "Medium".
	OriginRegion      string // e.g. "Rajasthan", "West Bengal".
	Tags              []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Available reports whether the product can currently be purchased.
func (p *Product) Available() bool {
	return p.InStock && p.QuantityAvailable > 0
}
