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
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// cartLineRow joins a cart line with its product's current name and first image.
type cartLineRow struct {
	model.CartLineModel
	ProductName   string
	ProductImages []string `gorm:"serializer:json"`
}

// ListLines returns the buyer's current lines with product names and images
// resolved, oldest first.
func (repo *cartRepository) ListLines(ctx context.Context, buyerID uuid.UUID) ([]*entity.CartLine, error) {
	var rows []*cartLineRow
	err := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Select("cart_lines.*, products.name AS product_name, products.images AS product_images").
		Joins("LEFT JOIN products ON products.id = cart_lines.product_id").
		Where("cart_lines.buyer_id = ?", buyerID).
		Order("cart_lines.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	lines := make([]*entity.CartLine, 0, len(rows))
	for _, row := range rows {
		line := toCartLineDomain(&row.CartLineModel)
		line.ProductName = row.ProductName
		if len(row.ProductImages) > 0 {
			line.ImageURL = row.ProductImages[0]
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// UpsertLine inserts the line, or, when a line for the same product already
// exists, atomically increments its quantity. The conflict target is the
// (buyer_id, product_id) unique index, so two concurrent adds of the same
// product merge into one line instead of losing an update. The stored
// price_at_add_time of an existing line is deliberately left untouched.
func (repo *cartRepository) UpsertLine(ctx context.Context, line *entity.CartLine) error {
	lineM := fromCartLineDomain(line)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "buyer_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_lines.quantity + ?", lineM.Quantity),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(lineM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart line")
	}

	return nil
}

// SetQuantity sets the line's quantity to qty.
func (repo *cartRepository) SetQuantity(ctx context.Context, buyerID, productID uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Update("quantity", qty)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set cart line quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// RemoveLine deletes the line for the product.
func (repo *cartRepository) RemoveLine(ctx context.Context, buyerID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Delete(&model.CartLineModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// Clear deletes every line in the buyer's cart.
func (repo *cartRepository) Clear(ctx context.Context, buyerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Delete(&model.CartLineModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// toCartLineDomain converts a GORM CartLineModel to a domain entity.
func toCartLineDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		BuyerID:        data.BuyerID,
		ProductID:      data.ProductID,
		Quantity:       data.Quantity,
		PriceAtAddTime: data.PriceAtAddTime,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCartLineDomain converts a domain entity to a GORM CartLineModel.
func fromCartLineDomain(data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	return &model.CartLineModel{
		BuyerID:        data.BuyerID,
		ProductID:      data.ProductID,
		Quantity:       data.Quantity,
		PriceAtAddTime: data.PriceAtAddTime,
	}
}
