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

type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockrepo.MockTransactionManager
	factory   *mockrepo.MockRepositoryFactory
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	factory := mockrepo.NewMockRepositoryFactory()
	txManager := &mockrepo.MockTransactionManager{Factory: factory}
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)

	service := NewCartService(CartServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return cartServiceFixtures{service: service, txManager: txManager, factory: factory}
}

func TestCartService_AddToCart_SnapshotsCurrentPrice(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	product := &entity.Product{
		ID:                uuid.New(),
		Name:              "Madhubani Peacock",
		Price:             350,
		InStock:           true,
		QuantityAvailable: 5,
	}

	fx.factory.Products.On("FindByID", ctx, product.ID).Return(product, nil)
	fx.factory.Carts.On("UpsertLine", ctx, mock.MatchedBy(func(line *entity.CartLine) bool {
		return line.BuyerID == buyerID &&
			line.ProductID == product.ID &&
			line.Quantity == 1 &&
			line.PriceAtAddTime == 350
	})).Return(nil)
	fx.factory.Carts.On("ListLines", ctx, buyerID).Return([]*entity.CartLine{
		{BuyerID: buyerID, ProductID: product.ID, Quantity: 1, PriceAtAddTime: 350},
	}, nil)

	view, err := fx.service.AddToCart(ctx, buyerID, product.ID)

	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.InDelta(t, 350, view.Totals.Subtotal, 0.001)
	fx.factory.Carts.AssertExpectations(t)
}

func TestCartService_AddToCart_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.Products.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	view, err := fx.service.AddToCart(ctx, uuid.New(), productID)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.factory.Carts.AssertNotCalled(t, "UpsertLine", mock.Anything, mock.Anything)
}

func TestCartService_UpdateCart_ZeroQuantityRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	productID := uuid.New()

	fx.factory.Carts.On("RemoveLine", ctx, buyerID, productID).Return(nil)
	fx.factory.Carts.On("ListLines", ctx, buyerID).Return([]*entity.CartLine{}, nil)

	view, err := fx.service.UpdateCart(ctx, buyerID, &usecase.UpdateCartInput{ProductID: productID, Quantity: 0})

	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	fx.factory.Carts.AssertNotCalled(t, "SetQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_UpdateCart_SetsQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	productID := uuid.New()

	fx.factory.Carts.On("SetQuantity", ctx, buyerID, productID, 3).Return(nil)
	fx.factory.Carts.On("ListLines", ctx, buyerID).Return([]*entity.CartLine{
		{BuyerID: buyerID, ProductID: productID, Quantity: 3, PriceAtAddTime: 200},
	}, nil)

	view, err := fx.service.UpdateCart(ctx, buyerID, &usecase.UpdateCartInput{ProductID: productID, Quantity: 3})

	require.NoError(t, err)
	assert.Equal(t, 3, view.Totals.TotalItems)
	assert.InDelta(t, 600, view.Totals.Subtotal, 0.001)
}

func TestCartService_UpdateCart_MissingLineTolerated(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	productID := uuid.New()

	fx.factory.Carts.On("RemoveLine", ctx, buyerID, productID).Return(repository.ErrCartLineNotFound)
	fx.factory.Carts.On("ListLines", ctx, buyerID).Return([]*entity.CartLine{}, nil)

	view, err := fx.service.UpdateCart(ctx, buyerID, &usecase.UpdateCartInput{ProductID: productID, Quantity: -1})

	require.NoError(t, err)
	require.NotNil(t, view)
}

func TestCartService_GetCart_DerivesTotals(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	// Tax is 10% of the snapshot subtotal, not of any live price.
	fx.factory.Carts.On("ListLines", ctx, buyerID).Return([]*entity.CartLine{
		{BuyerID: buyerID, ProductID: uuid.New(), Quantity: 2, PriceAtAddTime: 200},
	}, nil)

	view, err := fx.service.GetCart(ctx, buyerID)

	require.NoError(t, err)
	assert.InDelta(t, 400, view.Totals.Subtotal, 0.001)
	assert.InDelta(t, 40, view.Totals.Tax, 0.001)
	assert.InDelta(t, 440, view.Totals.Total, 0.001)
	assert.Equal(t, 2, view.Totals.TotalItems)
}
