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

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create appends a new order to the ledger.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByBuyer returns the buyer's orders newest-first.
func (repo *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, page, limit int) ([]*entity.Order, int64, error) {
	return repo.list(ctx, "buyer_id = ?", buyerID, page, limit)
}

// ListByArtist returns the artist's incoming orders newest-first.
func (repo *orderRepository) ListByArtist(ctx context.Context, artistID uuid.UUID, page, limit int) ([]*entity.Order, int64, error) {
	return repo.list(ctx, "artist_id = ?", artistID, page, limit)
}

func (repo *orderRepository) list(ctx context.Context, cond string, id uuid.UUID, page, limit int) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where(cond, id)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderMs []*model.OrderModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orderMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, o := range orderMs {
		orders = append(orders, toOrderDomain(o))
	}

	return orders, total, nil
}

// UpdateStatus persists a status transition.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// toOrderDomain converts a GORM OrderModel to a domain entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		BuyerID:         data.BuyerID,
		ArtistID:        data.ArtistID,
		ArtistName:      data.ArtistName,
		Quantity:        data.Quantity,
		PriceAtPurchase: data.PriceAtPurchase,
		Status:          entity.OrderStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		BuyerID:         data.BuyerID,
		ArtistID:        data.ArtistID,
		ArtistName:      data.ArtistName,
		Quantity:        data.Quantity,
		PriceAtPurchase: data.PriceAtPurchase,
		Status:          data.Status.String(),
	}
}
