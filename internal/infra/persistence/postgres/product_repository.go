package postgres

import (
	"context"

	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	"rangriti/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product with its artist display name resolved.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	names, err := repo.artistNames(ctx, []uuid.UUID{productM.ArtistID})
	if err != nil {
		return nil, err
	}

	return toProductDomain(&productM, names[productM.ArtistID]), nil
}

// List returns the filtered page plus the total match count. All supplied
// filters combine with AND; artist names resolve through a subquery on
// artist_profiles so the linkage stays the artist_id foreign key.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if len(filter.Categories) > 0 {
		categories := make([]string, 0, len(filter.Categories))
		for _, c := range filter.Categories {
			categories = append(categories, c.String())
		}
		query = query.Where("category IN ?", categories)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if len(filter.ArtistNames) > 0 {
		sub := repo.db.Model(&model.ArtistProfileModel{}).
			Select("user_id").
			Where("artist_name IN ?", filter.ArtistNames)
		query = query.Where("artist_id IN (?)", sub)
	}
	if filter.InStock != nil {
		query = query.Where("in_stock = ?", *filter.InStock)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productMs []*model.ProductModel
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&productMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	artistIDs := make([]uuid.UUID, 0, len(productMs))
	seen := make(map[uuid.UUID]struct{}, len(productMs))
	for _, p := range productMs {
		if _, ok := seen[p.ArtistID]; !ok {
			seen[p.ArtistID] = struct{}{}
			artistIDs = append(artistIDs, p.ArtistID)
		}
	}

	names, err := repo.artistNames(ctx, artistIDs)
	if err != nil {
		return nil, 0, err
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, p := range productMs {
		products = append(products, toProductDomain(p, names[p.ArtistID]))
	}

	return products, total, nil
}

// Create persists a new product listing.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid artist reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product listing.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	// Struct-based Updates keeps the JSON serializer in play for Images and
	// Tags; the explicit Select forces zero values like in_stock=false through.
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Select("name", "category", "description", "images", "price",
			"rating", "reviews_count", "in_stock", "quantity_available",
			"material", "size", "origin_region", "tags").
		Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product listing.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock atomically reduces quantity_available by qty and clears the
// in_stock flag when it reaches zero. The stock guard lives in the WHERE
// clause so two concurrent purchases cannot both drain the last unit.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND quantity_available >= ?", id, qty).
		Updates(map[string]any{
			"quantity_available": gorm.Expr("quantity_available - ?", qty),
			"in_stock":           gorm.Expr("quantity_available - ? > 0", qty),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// artistNames resolves display names for a set of artist IDs in one query.
func (repo *productRepository) artistNames(ctx context.Context, artistIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(artistIDs))
	if len(artistIDs) == 0 {
		return names, nil
	}

	var profiles []*model.ArtistProfileModel
	err := repo.db.WithContext(ctx).
		Select("user_id", "artist_name").
		Where("user_id IN ?", artistIDs).
		Find(&profiles).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve artist names")
	}

	for _, p := range profiles {
		names[p.UserID] = p.ArtistName
	}

	return names, nil
}

// toProductDomain converts a GORM ProductModel to a domain entity.
func toProductDomain(data *model.ProductModel, artistName string) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                data.ID,
		ArtistID:          data.ArtistID,
		ArtistName:        artistName,
		Name:              data.Name,
		Category:          entity.Category(data.Category),
		Description:       data.Description,
		Images:            data.Images,
		Price:             data.Price,
		Rating:            data.Rating,
		ReviewsCount:      data.ReviewsCount,
		InStock:           data.InStock,
		QuantityAvailable: data.QuantityAvailable,
		Material:          data.Material,
		Size:              data.Size,
		OriginRegion:      data.OriginRegion,
		Tags:              data.Tags,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromProductDomain converts a domain entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                data.ID,
		ArtistID:          data.ArtistID,
		Name:              data.Name,
		Category:          data.Category.String(),
		Description:       data.Description,
		Images:            data.Images,
		Price:             data.Price,
		Rating:            data.Rating,
		ReviewsCount:      data.ReviewsCount,
		InStock:           data.InStock,
		QuantityAvailable: data.QuantityAvailable,
		Material:          data.Material,
		Size:              data.Size,
		OriginRegion:      data.OriginRegion,
		Tags:              data.Tags,
	}
}
