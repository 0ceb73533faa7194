package usecase

import (
	"context"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// ListProductsInput carries the optional catalogue filters plus pagination.
// All supplied filters combine with AND; zero values impose no constraint.
// Page and Limit are clamped against the configured bounds by the use case.
type ListProductsInput struct {
	Categories  []string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	ArtistNames []string
	InStock     *bool
	Page        int
	Limit       int
}

// ListProductsOutput is one catalogue page plus the total match count.
type ListProductsOutput struct {
	Products []*entity.Product
	Total    int64
	Page     int
	Limit    int
}

// CreateProductInput defines the data required to create a listing.
type CreateProductInput struct {
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Images            []string `json:"images"`
	Price             float64  `json:"price"`
	QuantityAvailable int      `json:"quantityAvailable"`
	Material          string   `json:"material"`
	Size              string   `json:"size"`
	OriginRegion      string   `json:"originRegion"`
	Tags              []string `json:"tags"`
}

// UpdateProductInput carries partial listing updates. Nil fields are left
// untouched.
type UpdateProductInput struct {
	Name              *string  `json:"name,omitempty"`
	Category          *string  `json:"category,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Images            []string `json:"images,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	QuantityAvailable *int     `json:"quantityAvailable,omitempty"`
	InStock           *bool    `json:"inStock,omitempty"`
	Material          *string  `json:"material,omitempty"`
	Size              *string  `json:"size,omitempty"`
	OriginRegion      *string  `json:"originRegion,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

// CatalogUsecase defines the interface for catalogue operations. Mutations
// carry the acting artist's ID and are restricted to the owning artist.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, artistID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, artistID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, artistID, productID uuid.UUID) error
}
