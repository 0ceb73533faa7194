package impl

import (
	"context"
	"fmt"
	"log/slog"

	"rangriti/config"
	deliverycontext "rangriti/internal/delivery/context"
	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	"rangriti/internal/domain/service"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager           repository.TransactionManager
	mailService         service.MailService
	eventPublisher      service.EventPublisher
	notificationService service.NotificationService
	defaultPageSize     int
	maxPageSize         int
	logger              *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager           repository.TransactionManager
	MailService         service.MailService
	EventPublisher      service.EventPublisher
	NotificationService service.NotificationService
	Config              *config.Config
	Logger              *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	defaultSize, maxSize := params.Config.PageBounds()

	return &orderService{
		txManager:           params.TxManager,
		mailService:         params.MailService,
		eventPublisher:      params.EventPublisher,
		notificationService: params.NotificationService,
		defaultPageSize:     defaultSize,
		maxPageSize:         maxSize,
		logger:              params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuyNow places one pending order for a single unit of the product at its
// live price. Only that product's cart line is removed when present; the
// rest of the cart is untouched.
func (srv *orderService) BuyNow(ctx context.Context, buyerID, productID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	var buyer *entity.User
	var artistToken string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		cartRepo := repoFactory.CartRepo()
		userRepo := repoFactory.UserRepo()

		product, findErr := productRepo.FindByID(ctx, productID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(findErr, "failed to load product for buy-now")
		}
		if !product.Available() {
			return errors.Wrap(domainerrors.ErrProductOutOfStock, "product unavailable")
		}

		var loadErr error
		buyer, loadErr = userRepo.FindByID(ctx, buyerID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to load buyer for buy-now")
		}

		newOrder, createErr := srv.createOrder(ctx, repoFactory, buyer.ID, product, 1, product.Price)
		if createErr != nil {
			return createErr
		}
		order = newOrder

		// Remove only the purchased product's line; an absent line is fine.
		if removeErr := cartRepo.RemoveLine(ctx, buyerID, productID); removeErr != nil &&
			!errors.Is(removeErr, repository.ErrCartLineNotFound) {
			return errors.Wrap(removeErr, "failed to remove purchased cart line")
		}

		artistToken = srv.artistPushToken(ctx, userRepo, product.ArtistID)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Buy-now failed", slog.Any("buyerID", buyerID), slog.Any("productID", productID), slog.Any("error", err))

		return nil, err
	}

	if err := srv.finishPlacedOrders(ctx, buyer, []*entity.Order{order}, artistToken); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Buy-now completed", slog.Any("orderID", order.ID), slog.Any("buyerID", buyerID))

	return order, nil
}

// Checkout converts every cart line into an order at the line's
// priceAtAddTime snapshot, then clears the cart. What the buyer saw in the
// cart is what they pay, regardless of price changes since.
func (srv *orderService) Checkout(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order
	var buyer *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()
		userRepo := repoFactory.UserRepo()

		lines, listErr := cartRepo.ListLines(ctx, buyerID)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list cart lines for checkout")
		}
		if len(lines) == 0 {
			return errors.Wrap(domainerrors.ErrCartEmpty, "checkout on empty cart")
		}

		var loadErr error
		buyer, loadErr = userRepo.FindByID(ctx, buyerID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to load buyer for checkout")
		}

		for _, line := range lines {
			product, findErr := productRepo.FindByID(ctx, line.ProductID)
			if findErr != nil {
				if errors.Is(findErr, repository.ErrProductNotFound) {
					return errors.Wrap(domainerrors.ErrProductNotFound,
						fmt.Sprintf("cart line product %s no longer exists", line.ProductID))
				}

				return errors.Wrap(findErr, "failed to load product for checkout")
			}

			newOrder, createErr := srv.createOrder(ctx, repoFactory, buyer.ID, product, line.Quantity, line.PriceAtAddTime)
			if createErr != nil {
				return createErr
			}
			orders = append(orders, newOrder)
		}

		return errors.Wrap(cartRepo.Clear(ctx, buyerID), "failed to clear cart after checkout")
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, err
	}

	if err := srv.finishPlacedOrders(ctx, buyer, orders, ""); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Checkout completed", slog.Any("buyerID", buyerID), slog.Int("orders", len(orders)))

	return orders, nil
}

// createOrder appends one ledger entry and atomically decrements stock. The
// artist display name and the unit price are frozen on the order.
func (srv *orderService) createOrder(ctx context.Context, repoFactory repository.RepositoryFactory, buyerID uuid.UUID, product *entity.Product, quantity int, unitPrice float64) (*entity.Order, error) {
	if decErr := repoFactory.ProductRepo().DecrementStock(ctx, product.ID, quantity); decErr != nil {
		if errors.Is(decErr, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductOutOfStock, "insufficient stock")
		}

		return nil, errors.Wrap(decErr, "failed to decrement stock")
	}

	order := &entity.Order{
		ProductID:       product.ID,
		ProductName:     product.Name,
		BuyerID:         buyerID,
		ArtistID:        product.ArtistID,
		ArtistName:      product.ArtistName,
		Quantity:        quantity,
		PriceAtPurchase: unitPrice,
		Status:          entity.OrderStatusPending,
	}

	if createErr := repoFactory.OrderRepo().Create(ctx, order); createErr != nil {
		return nil, errors.Wrap(createErr, "failed to create order")
	}

	return order, nil
}

// finishPlacedOrders runs the post-commit side effects: confirmation mail
// (synchronous, failure surfaces to the caller), order events and the
// optional artist push (both best-effort).
func (srv *orderService) finishPlacedOrders(ctx context.Context, buyer *entity.User, orders []*entity.Order, artistToken string) error {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, order := range orders {
		event := &service.OrderEvent{
			RequestID:       requestID,
			OrderID:         order.ID.String(),
			ProductID:       order.ProductID.String(),
			BuyerID:         order.BuyerID.String(),
			ArtistID:        order.ArtistID.String(),
			ArtistName:      order.ArtistName,
			Quantity:        order.Quantity,
			PriceAtPurchase: order.PriceAtPurchase,
			Status:          order.Status.String(),
		}
		if pubErr := srv.eventPublisher.PublishOrderEvent(ctx, event); pubErr != nil {
			srv.log(ctx).Warn("Failed to publish order event", slog.Any("orderID", order.ID), slog.Any("error", pubErr))
		}
	}

	if artistToken != "" && len(orders) > 0 {
		order := orders[0]
		data := map[string]string{"orderId": order.ID.String()}
		if pushErr := srv.notificationService.SendSingleNotification(ctx, artistToken,
			"New order received", order.ProductName, data); pushErr != nil {
			srv.log(ctx).Warn("Failed to push order notification", slog.Any("orderID", order.ID), slog.Any("error", pushErr))
		}
	}

	for _, order := range orders {
		if mailErr := srv.mailService.SendOrderConfirmation(ctx, buyer.Email, order); mailErr != nil {
			srv.log(ctx).Error("Failed to send order confirmation", slog.Any("orderID", order.ID), slog.Any("error", mailErr))

			return errors.Wrap(domainerrors.ErrUpstreamFailure, "order confirmation mail failed")
		}
	}

	return nil
}

// artistPushToken resolves the artist's registered device token, if any.
func (srv *orderService) artistPushToken(ctx context.Context, userRepo repository.UserRepository, artistID uuid.UUID) string {
	artist, err := userRepo.FindByID(ctx, artistID)
	if err != nil || artist.ArtistProfile == nil {
		return ""
	}

	return artist.ArtistProfile.PushToken
}

// clampPage normalizes pagination against the configured bounds.
func (srv *orderService) clampPage(page, limit int) (int, int) {
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

// ListBuyerOrders returns the buyer's order history, newest first.
func (srv *orderService) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, input *usecase.ListOrdersInput) (*usecase.ListOrdersOutput, error) {
	return srv.listOrders(ctx, input, func(ctx context.Context, repoFactory repository.RepositoryFactory, page, limit int) ([]*entity.Order, int64, error) {
		return repoFactory.OrderRepo().ListByBuyer(ctx, buyerID, page, limit)
	})
}

// ListArtistOrders returns the artist's incoming orders, newest first.
func (srv *orderService) ListArtistOrders(ctx context.Context, artistID uuid.UUID, input *usecase.ListOrdersInput) (*usecase.ListOrdersOutput, error) {
	return srv.listOrders(ctx, input, func(ctx context.Context, repoFactory repository.RepositoryFactory, page, limit int) ([]*entity.Order, int64, error) {
		return repoFactory.OrderRepo().ListByArtist(ctx, artistID, page, limit)
	})
}

func (srv *orderService) listOrders(ctx context.Context, input *usecase.ListOrdersInput, list func(context.Context, repository.RepositoryFactory, int, int) ([]*entity.Order, int64, error)) (*usecase.ListOrdersOutput, error) {
	page, limit := srv.clampPage(input.Page, input.Limit)

	var orders []*entity.Order
	var total int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		orders, total, listErr = list(ctx, repoFactory, page, limit)

		return errors.Wrap(listErr, "failed to list orders")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, err
	}

	return &usecase.ListOrdersOutput{
		Orders: orders,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

// UpdateOrderStatus applies a status transition, restricted to the owning
// artist and to the legal transition graph.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, artistID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status: " + status.String())
	}

	var updated *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, findErr := orderRepo.FindByID(ctx, orderID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(findErr, "failed to load order for status update")
		}
		if order.ArtistID != artistID {
			return errors.Wrap(domainerrors.ErrForbidden, "order belongs to another artist")
		}
		if !order.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage(
				fmt.Sprintf("cannot move order from %s to %s", order.Status, status))
		}

		if updateErr := orderRepo.UpdateStatus(ctx, orderID, status); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update order status")
		}

		order.Status = status
		updated = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update order status", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", status.String()))

	return updated, nil
}
