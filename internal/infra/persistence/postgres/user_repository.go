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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading whichever profile it carries.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("BuyerProfile").
		Preload("ArtistProfile").
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single account by email, across both account kinds.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("BuyerProfile").
		Preload("ArtistProfile").
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new account entity, including its profile, to the database.
// GORM's Create with associations inserts into users and buyer_profiles or
// artist_profiles in one statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.BuyerProfile != nil && userM.BuyerProfile != nil {
		user.BuyerProfile.UserID = userM.BuyerProfile.UserID
		user.BuyerProfile.UpdatedAt = userM.BuyerProfile.UpdatedAt
	}
	if user.ArtistProfile != nil && userM.ArtistProfile != nil {
		user.ArtistProfile.UserID = userM.ArtistProfile.UserID
		user.ArtistProfile.UpdatedAt = userM.ArtistProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing account entity, including its profile, in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Use Session with FullSaveAssociations to update the nested profile as well.
	if err := repo.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt
	if user.BuyerProfile != nil && userM.BuyerProfile != nil {
		user.BuyerProfile.UpdatedAt = userM.BuyerProfile.UpdatedAt
	}
	if user.ArtistProfile != nil && userM.ArtistProfile != nil {
		user.ArtistProfile.UpdatedAt = userM.ArtistProfile.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		BuyerProfile:  toBuyerProfileDomain(data.BuyerProfile),
		ArtistProfile: toArtistProfileDomain(data.ArtistProfile),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		BuyerProfile:  fromBuyerProfileDomain(data.BuyerProfile),
		ArtistProfile: fromArtistProfileDomain(data.ArtistProfile),
	}
}

func toBuyerProfileDomain(data *model.BuyerProfileModel) *entity.BuyerProfile {
	if data == nil {
		return nil
	}

	return &entity.BuyerProfile{
		UserID:          data.UserID,
		ShippingAddress: data.ShippingAddress,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromBuyerProfileDomain(data *entity.BuyerProfile) *model.BuyerProfileModel {
	if data == nil {
		return nil
	}

	return &model.BuyerProfileModel{
		UserID:          data.UserID,
		ShippingAddress: data.ShippingAddress,
	}
}

func toArtistProfileDomain(data *model.ArtistProfileModel) *entity.ArtistProfile {
	if data == nil {
		return nil
	}

	return &entity.ArtistProfile{
		UserID:            data.UserID,
		ArtistName:        data.ArtistName,
		Specialization:    data.Specialization,
		City:              data.City,
		PortfolioURL:      data.PortfolioURL,
		Bio:               data.Bio,
		ContactNumber:     data.ContactNumber,
		Instagram:         data.Instagram,
		Facebook:          data.Facebook,
		Twitter:           data.Twitter,
		ProfilePictureURL: data.ProfilePictureURL,
		ArtSampleURLs:     data.ArtSampleURLs,
		PushToken:         data.PushToken,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromArtistProfileDomain(data *entity.ArtistProfile) *model.ArtistProfileModel {
	if data == nil {
		return nil
	}

	return &model.ArtistProfileModel{
		UserID:            data.UserID,
		ArtistName:        data.ArtistName,
		Specialization:    data.Specialization,
		City:              data.City,
		PortfolioURL:      data.PortfolioURL,
		Bio:               data.Bio,
		ContactNumber:     data.ContactNumber,
		Instagram:         data.Instagram,
		Facebook:          data.Facebook,
		Twitter:           data.Twitter,
		ProfilePictureURL: data.ProfilePictureURL,
		ArtSampleURLs:     data.ArtSampleURLs,
		PushToken:         data.PushToken,
	}
}
