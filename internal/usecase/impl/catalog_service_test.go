package impl

import (
	"context"
	"testing"

	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	mockrepo "rangriti/internal/mocks/repository"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockrepo.MockTransactionManager
	factory   *mockrepo.MockRepositoryFactory
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	factory := mockrepo.NewMockRepositoryFactory()
	txManager := &mockrepo.MockTransactionManager{Factory: factory}
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)

	service := NewCatalogService(CatalogServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return catalogServiceFixtures{service: service, txManager: txManager, factory: factory}
}

func TestCatalogService_ListProducts_ClampsPagination(t *testing.T) {
	testCases := []struct {
		name          string
		page          int
		limit         int
		expectedPage  int
		expectedLimit int
	}{
		{name: "zero values take defaults", page: 0, limit: 0, expectedPage: 1, expectedLimit: 20},
		{name: "negative page clamps to one", page: -3, limit: 10, expectedPage: 1, expectedLimit: 10},
		{name: "oversized limit clamps to max", page: 2, limit: 1000, expectedPage: 2, expectedLimit: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()

			fx.factory.Products.On("List", ctx, mock.MatchedBy(func(filter repository.ProductFilter) bool {
				return filter.Page == tc.expectedPage && filter.Limit == tc.expectedLimit
			})).Return([]*entity.Product{}, int64(0), nil)

			output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Page: tc.page, Limit: tc.limit})

			require.NoError(t, err)
			assert.Equal(t, tc.expectedPage, output.Page)
			assert.Equal(t, tc.expectedLimit, output.Limit)
			fx.factory.Products.AssertExpectations(t)
		})
	}
}

func TestCatalogService_ListProducts_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	output, err := fx.service.ListProducts(context.Background(), &usecase.ListProductsInput{
		Categories: []string{"Ceramics"},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.factory.Products.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCatalogService_ListProducts_PassesFilters(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	minPrice := 100.0
	inStock := true
	listed := []*entity.Product{{ID: uuid.New(), Name: "Terracotta Vase", Category: entity.CategoryPottery}}

	fx.factory.Products.On("List", ctx, mock.MatchedBy(func(filter repository.ProductFilter) bool {
		return len(filter.Categories) == 1 &&
			filter.Categories[0] == entity.CategoryPottery &&
			filter.MinPrice != nil && *filter.MinPrice == minPrice &&
			filter.InStock != nil && *filter.InStock
	})).Return(listed, int64(1), nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Categories: []string{"Pottery"},
		MinPrice:   &minPrice,
		InStock:    &inStock,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
	require.Len(t, output.Products, 1)
	assert.Equal(t, "Terracotta Vase", output.Products[0].Name)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.Products.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	artistID := uuid.New()

	fx.factory.Products.On("Create", ctx, mock.MatchedBy(func(product *entity.Product) bool {
		return product.ArtistID == artistID && product.InStock && product.QuantityAvailable == 4
	})).Return(nil)

	product, err := fx.service.CreateProduct(ctx, artistID, &usecase.CreateProductInput{
		Name:              "Channapatna Toy Set",
		Category:          "Woodcraft",
		Images:            []string{"https://cdn.example.com/toys.png"},
		Price:             450,
		QuantityAvailable: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CategoryWoodcraft, product.Category)
	assert.True(t, product.InStock)
}

func TestCatalogService_CreateProduct_RequiresImage(t *testing.T) {
	fx := createTestCatalogService(t)

	product, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:     "Bare Listing",
		Category: "Painting",
		Price:    100,
	})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.factory.Products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateProduct_RejectsNegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	product, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:     "Bad Price",
		Category: "Painting",
		Images:   []string{"https://cdn.example.com/art.png"},
		Price:    -10,
	})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateProduct_OtherArtistForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()
	productID := uuid.New()
	newName := "Renamed"

	fx.factory.Products.On("FindByID", ctx, productID).
		Return(&entity.Product{ID: productID, ArtistID: owner}, nil)

	updated, err := fx.service.UpdateProduct(ctx, intruder, productID, &usecase.UpdateProductInput{Name: &newName})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.factory.Products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateProduct_AppliesPartialFields(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	artistID := uuid.New()
	productID := uuid.New()
	newPrice := 999.0
	newQuantity := 0

	fx.factory.Products.On("FindByID", ctx, productID).Return(&entity.Product{
		ID:                productID,
		ArtistID:          artistID,
		Name:              "Original",
		Category:          entity.CategoryHandloom,
		Price:             500,
		InStock:           true,
		QuantityAvailable: 2,
	}, nil)
	fx.factory.Products.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, artistID, productID, &usecase.UpdateProductInput{
		Price:             &newPrice,
		QuantityAvailable: &newQuantity,
	})

	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Name)
	assert.InDelta(t, 999, updated.Price, 0.001)
	assert.False(t, updated.InStock)
}

func TestCatalogService_DeleteProduct_OtherArtistForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.Products.On("FindByID", ctx, productID).
		Return(&entity.Product{ID: productID, ArtistID: uuid.New()}, nil)

	err := fx.service.DeleteProduct(ctx, uuid.New(), productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.factory.Products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
