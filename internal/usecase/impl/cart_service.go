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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	pricing   entity.Pricing
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	taxRate, flatFee, threshold := params.Config.Pricing()

	return &cartService{
		txManager: params.TxManager,
		pricing: entity.Pricing{
			TaxRatePercent:        taxRate,
			ShippingFlatFee:       flatFee,
			FreeShippingThreshold: threshold,
		},
		logger: params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the buyer's current cart with derived totals.
func (srv *cartService) GetCart(ctx context.Context, buyerID uuid.UUID) (*usecase.CartView, error) {
	var view *usecase.CartView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var loadErr error
		view, loadErr = srv.loadCartView(ctx, repoFactory, buyerID)

		return loadErr
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get cart", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, err
	}

	return view, nil
}

// AddToCart adds one unit of the product. An existing line is merged through
// an atomic increment, so two concurrent adds of the same product end up as
// one line with both units counted.
func (srv *cartService) AddToCart(ctx context.Context, buyerID, productID uuid.UUID) (*usecase.CartView, error) {
	var view *usecase.CartView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		cartRepo := repoFactory.CartRepo()

		product, findErr := productRepo.FindByID(ctx, productID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(findErr, "failed to load product for cart add")
		}

		// priceAtAddTime is snapshotted here; the upsert keeps the
		// existing line's snapshot when the product is already present.
		line := &entity.CartLine{
			BuyerID:        buyerID,
			ProductID:      product.ID,
			Quantity:       1,
			PriceAtAddTime: product.Price,
		}

		if upsertErr := cartRepo.UpsertLine(ctx, line); upsertErr != nil {
			return errors.Wrap(upsertErr, "failed to add cart line")
		}

		var loadErr error
		view, loadErr = srv.loadCartView(ctx, repoFactory, buyerID)

		return loadErr
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add to cart", slog.Any("buyerID", buyerID), slog.Any("productID", productID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Added to cart", slog.Any("buyerID", buyerID), slog.Any("productID", productID))

	return view, nil
}

// UpdateCart sets a line's quantity. A target of zero or less removes the
// line; a missing line is a handled outcome, not a failure. The refreshed
// cart is returned either way.
func (srv *cartService) UpdateCart(ctx context.Context, buyerID uuid.UUID, input *usecase.UpdateCartInput) (*usecase.CartView, error) {
	var view *usecase.CartView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var mutErr error
		if input.Quantity <= 0 {
			mutErr = cartRepo.RemoveLine(ctx, buyerID, input.ProductID)
		} else {
			mutErr = cartRepo.SetQuantity(ctx, buyerID, input.ProductID, input.Quantity)
		}
		if mutErr != nil && !errors.Is(mutErr, repository.ErrCartLineNotFound) {
			return errors.Wrap(mutErr, "failed to update cart line")
		}
		if errors.Is(mutErr, repository.ErrCartLineNotFound) {
			srv.log(ctx).Debug("Cart update for absent line", slog.Any("buyerID", buyerID), slog.Any("productID", input.ProductID))
		}

		var loadErr error
		view, loadErr = srv.loadCartView(ctx, repoFactory, buyerID)

		return loadErr
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update cart", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, err
	}

	return view, nil
}

// loadCartView reads the lines and derives totals fresh; nothing is stored.
func (srv *cartService) loadCartView(ctx context.Context, repoFactory repository.RepositoryFactory, buyerID uuid.UUID) (*usecase.CartView, error) {
	lines, err := repoFactory.CartRepo().ListLines(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	cart := &entity.Cart{BuyerID: buyerID, Lines: lines}

	return &usecase.CartView{
		Lines:  lines,
		Totals: cart.Totals(srv.pricing),
	}, nil
}
