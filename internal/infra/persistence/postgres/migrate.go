package postgres

import (
	"rangriti/internal/errors"
	"rangriti/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// migrate keeps the schema aligned with the persistence models on startup.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.UserModel{},
		&model.BuyerProfileModel{},
		&model.ArtistProfileModel{},
		&model.AuthenticationModel{},
		&model.RefreshTokenModel{},
		&model.ProductModel{},
		&model.CartLineModel{},
		&model.OrderModel{},
		&model.WorkshopModel{},
	)

	return errors.WithStack(err)
}
