package impl

import (
	"context"
	"testing"

	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	mockrepo "rangriti/internal/mocks/repository"
	mocksvc "rangriti/internal/mocks/service"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service             usecase.OrderUsecase
	txManager           *mockrepo.MockTransactionManager
	factory             *mockrepo.MockRepositoryFactory
	mailService         *mocksvc.MockMailService
	eventPublisher      *mocksvc.MockEventPublisher
	notificationService *mocksvc.MockNotificationService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	factory := mockrepo.NewMockRepositoryFactory()
	txManager := &mockrepo.MockTransactionManager{Factory: factory}
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)

	mailService := &mocksvc.MockMailService{}
	eventPublisher := &mocksvc.MockEventPublisher{}
	notificationService := &mocksvc.MockNotificationService{}

	service := NewOrderService(OrderServiceParams{
		TxManager:           txManager,
		MailService:         mailService,
		EventPublisher:      eventPublisher,
		NotificationService: notificationService,
		Config:              newTestConfig(),
		Logger:              newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:             service,
		txManager:           txManager,
		factory:             factory,
		mailService:         mailService,
		eventPublisher:      eventPublisher,
		notificationService: notificationService,
	}
}

func testBuyer(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:           id,
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		BuyerProfile: &entity.BuyerProfile{},
	}
}

func TestOrderService_BuyNow_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	artistID := uuid.New()
	product := &entity.Product{
		ID:                uuid.New(),
		ArtistID:          artistID,
		ArtistName:        "Meera",
		Name:              "Pattachitra Scroll",
		Price:             700,
		InStock:           true,
		QuantityAvailable: 3,
	}

	fx.factory.Products.On("FindByID", ctx, product.ID).Return(product, nil)
	fx.factory.Users.On("FindByID", ctx, buyerID).Return(testBuyer(buyerID), nil)
	fx.factory.Users.On("FindByID", ctx, artistID).
		Return(&entity.User{ID: artistID, ArtistProfile: &entity.ArtistProfile{ArtistName: "Meera", PushToken: "device-token"}}, nil)
	fx.factory.Products.On("DecrementStock", ctx, product.ID, 1).Return(nil)
	fx.factory.Orders.On("Create", ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.BuyerID == buyerID &&
			order.ProductID == product.ID &&
			order.Quantity == 1 &&
			order.PriceAtPurchase == 700 &&
			order.Status == entity.OrderStatusPending &&
			order.ArtistName == "Meera"
	})).Return(nil)
	fx.factory.Carts.On("RemoveLine", ctx, buyerID, product.ID).Return(nil)
	fx.eventPublisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil)
	fx.notificationService.On("SendSingleNotification", ctx, "device-token", "New order received", product.Name, mock.Anything).Return(nil)
	fx.mailService.On("SendOrderConfirmation", ctx, "asha@example.com", mock.Anything).Return(nil)

	order, err := fx.service.BuyNow(ctx, buyerID, product.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	fx.factory.Orders.AssertExpectations(t)
	fx.factory.Carts.AssertCalled(t, "RemoveLine", ctx, buyerID, product.ID)
	fx.factory.Carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestOrderService_BuyNow_OutOfStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Sold Out", InStock: false}

	fx.factory.Products.On("FindByID", ctx, product.ID).Return(product, nil)

	order, err := fx.service.BuyNow(ctx, uuid.New(), product.ID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductOutOfStock)
	fx.factory.Orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_BuyNow_DecrementRace(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), InStock: true, QuantityAvailable: 1, Price: 100}

	fx.factory.Products.On("FindByID", ctx, product.ID).Return(product, nil)
	fx.factory.Users.On("FindByID", ctx, buyerID).Return(testBuyer(buyerID), nil)
	fx.factory.Products.On("DecrementStock", ctx, product.ID, 1).Return(repository.ErrProductNotFound)

	order, err := fx.service.BuyNow(ctx, buyerID, product.ID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductOutOfStock)
}

func TestOrderService_Checkout_UsesSnapshotPrices(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	artistID := uuid.New()
	product := &entity.Product{
		ID:                uuid.New(),
		ArtistID:          artistID,
		ArtistName:        "Meera",
		Name:              "Blue Pottery Bowl",
		Price:             900, // live price went up after the add
		InStock:           true,
		QuantityAvailable: 10,
	}
	lines := []*entity.CartLine{
		{BuyerID: buyerID, ProductID: product.ID, Quantity: 2, PriceAtAddTime: 600},
	}

	fx.factory.Carts.On("ListLines", ctx, buyerID).Return(lines, nil)
	fx.factory.Users.On("FindByID", ctx, buyerID).Return(testBuyer(buyerID), nil)
	fx.factory.Products.On("FindByID", ctx, product.ID).Return(product, nil)
	fx.factory.Products.On("DecrementStock", ctx, product.ID, 2).Return(nil)
	fx.factory.Orders.On("Create", ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.PriceAtPurchase == 600 && order.Quantity == 2
	})).Return(nil)
	fx.factory.Carts.On("Clear", ctx, buyerID).Return(nil)
	fx.eventPublisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil)
	fx.mailService.On("SendOrderConfirmation", ctx, "asha@example.com", mock.Anything).Return(nil)

	orders, err := fx.service.Checkout(ctx, buyerID)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.InDelta(t, 600, orders[0].PriceAtPurchase, 0.001)
	fx.factory.Carts.AssertCalled(t, "Clear", ctx, buyerID)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	fx.factory.Carts.On("ListLines", ctx, buyerID).Return([]*entity.CartLine{}, nil)

	orders, err := fx.service.Checkout(ctx, buyerID)

	require.Error(t, err)
	assert.Nil(t, orders)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	fx.factory.Carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_MailFailureSurfaces(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), InStock: true, QuantityAvailable: 5, Price: 100}

	fx.factory.Carts.On("ListLines", ctx, buyerID).Return([]*entity.CartLine{
		{BuyerID: buyerID, ProductID: product.ID, Quantity: 1, PriceAtAddTime: 100},
	}, nil)
	fx.factory.Users.On("FindByID", ctx, buyerID).Return(testBuyer(buyerID), nil)
	fx.factory.Products.On("FindByID", ctx, product.ID).Return(product, nil)
	fx.factory.Products.On("DecrementStock", ctx, product.ID, 1).Return(nil)
	fx.factory.Orders.On("Create", ctx, mock.Anything).Return(nil)
	fx.factory.Carts.On("Clear", ctx, buyerID).Return(nil)
	fx.eventPublisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil)
	fx.mailService.On("SendOrderConfirmation", ctx, "asha@example.com", mock.Anything).
		Return(errors.New("smtp unreachable"))

	orders, err := fx.service.Checkout(ctx, buyerID)

	require.Error(t, err)
	assert.Nil(t, orders)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
}

func TestOrderService_ListBuyerOrders_ClampsPagination(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	fx.factory.Orders.On("ListByBuyer", ctx, buyerID, 1, 20).Return([]*entity.Order{}, int64(0), nil)

	output, err := fx.service.ListBuyerOrders(ctx, buyerID, &usecase.ListOrdersInput{Page: 0, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 20, output.Limit)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	artistID := uuid.New()
	orderID := uuid.New()

	fx.factory.Orders.On("FindByID", ctx, orderID).
		Return(&entity.Order{ID: orderID, ArtistID: artistID, Status: entity.OrderStatusPending}, nil)
	fx.factory.Orders.On("UpdateStatus", ctx, orderID, entity.OrderStatusAccepted).Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, artistID, orderID, entity.OrderStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, updated.Status)
}

func TestOrderService_UpdateOrderStatus_IllegalTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	artistID := uuid.New()
	orderID := uuid.New()

	fx.factory.Orders.On("FindByID", ctx, orderID).
		Return(&entity.Order{ID: orderID, ArtistID: artistID, Status: entity.OrderStatusPending}, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, artistID, orderID, entity.OrderStatusDelivered)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	fx.factory.Orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	updated, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), entity.OrderStatus("returned"))

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.factory.Orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_OtherArtistForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.factory.Orders.On("FindByID", ctx, orderID).
		Return(&entity.Order{ID: orderID, ArtistID: uuid.New(), Status: entity.OrderStatusPending}, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, uuid.New(), orderID, entity.OrderStatusAccepted)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
