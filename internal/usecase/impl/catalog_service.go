package impl

import (
	"context"
	"log/slog"

	"rangriti/config"
	deliverycontext "rangriti/internal/delivery/context"
	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager       repository.TransactionManager
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultSize, maxSize := params.Config.PageBounds()

	return &catalogService{
		txManager:       params.TxManager,
		defaultPageSize: defaultSize,
		maxPageSize:     maxSize,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// clampPage normalizes pagination against the configured bounds.
func (srv *catalogService) clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = srv.defaultPageSize
	}
	if limit > srv.maxPageSize {
		limit = srv.maxPageSize
	}

	return page, limit
}

// ListProducts returns one filtered catalogue page plus the total count.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	page, limit := srv.clampPage(input.Page, input.Limit)

	categories := make([]entity.Category, 0, len(input.Categories))
	for _, raw := range input.Categories {
		category := entity.Category(raw)
		if !category.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category: " + raw)
		}
		categories = append(categories, category)
	}

	filter := repository.ProductFilter{
		Categories:  categories,
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		MinRating:   input.MinRating,
		ArtistNames: input.ArtistNames,
		InStock:     input.InStock,
		Page:        page,
		Limit:       limit,
	}

	var products []*entity.Product
	var total int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		products, total, listErr = repoFactory.ProductRepo().List(ctx, filter)

		return errors.Wrap(listErr, "failed to list products")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, err
	}

	return &usecase.ListProductsOutput{
		Products: products,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// GetProduct loads a single listing.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		product, findErr = repoFactory.ProductRepo().FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(findErr, "failed to load product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct creates a listing owned by the acting artist.
func (srv *catalogService) CreateProduct(ctx context.Context, artistID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category: " + input.Category)
	}
	if len(input.Images) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one image is required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	product := &entity.Product{
		ArtistID:          artistID,
		Name:              input.Name,
		Category:          category,
		Description:       input.Description,
		Images:            input.Images,
		Price:             input.Price,
		InStock:           input.QuantityAvailable > 0,
		QuantityAvailable: input.QuantityAvailable,
		Material:          input.Material,
		Size:              input.Size,
		OriginRegion:      input.OriginRegion,
		Tags:              input.Tags,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.ProductRepo().Create(ctx, product), "failed to create product")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("artistID", artistID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("artistID", artistID))

	return product, nil
}

// UpdateProduct applies partial updates, restricted to the owning artist.
func (srv *catalogService) UpdateProduct(ctx context.Context, artistID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, findErr := productRepo.FindByID(ctx, productID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(findErr, "failed to load product for update")
		}
		if product.ArtistID != artistID {
			return errors.Wrap(domainerrors.ErrForbidden, "product belongs to another artist")
		}

		if applyErr := applyProductInput(product, input); applyErr != nil {
			return applyErr
		}

		if updateErr := productRepo.Update(ctx, product); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update product")
		}

		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteProduct removes a listing, restricted to the owning artist.
func (srv *catalogService) DeleteProduct(ctx context.Context, artistID, productID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, findErr := productRepo.FindByID(ctx, productID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(findErr, "failed to load product for delete")
		}
		if product.ArtistID != artistID {
			return errors.Wrap(domainerrors.ErrForbidden, "product belongs to another artist")
		}

		return errors.Wrap(productRepo.Delete(ctx, productID), "failed to delete product")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("artistID", artistID))

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.UpdateProductInput) error {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		category := entity.Category(*input.Category)
		if !category.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown category: " + *input.Category)
		}
		product.Category = category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Images != nil {
		if len(input.Images) == 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("at least one image is required")
		}
		product.Images = input.Images
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.QuantityAvailable != nil {
		product.QuantityAvailable = *input.QuantityAvailable
		product.InStock = *input.QuantityAvailable > 0
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.Material != nil {
		product.Material = *input.Material
	}
	if input.Size != nil {
		product.Size = *input.Size
	}
	if input.OriginRegion != nil {
		product.OriginRegion = *input.OriginRegion
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}

	return nil
}
