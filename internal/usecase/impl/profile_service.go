package impl

import (
	"context"
	"log/slog"

	deliverycontext "rangriti/internal/delivery/context"
	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the account with its profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
			}

			return errors.Wrap(findErr, "failed to load profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to get profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

// UpdateProfile applies partial updates to the account and its profile.
// Fields for the other account kind are ignored.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
			}

			return errors.Wrap(findErr, "failed to load profile for update")
		}

		applyProfileInput(user, input)

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

func applyProfileInput(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.Name != nil {
		user.Name = *input.Name
	}

	if user.BuyerProfile != nil && input.ShippingAddress != nil {
		user.BuyerProfile.ShippingAddress = *input.ShippingAddress
	}

	if user.ArtistProfile == nil {
		return
	}

	profile := user.ArtistProfile
	if input.ArtistName != nil {
		profile.ArtistName = *input.ArtistName
	}
	if input.Specialization != nil {
		profile.Specialization = *input.Specialization
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.PortfolioURL != nil {
		profile.PortfolioURL = *input.PortfolioURL
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.ContactNumber != nil {
		profile.ContactNumber = *input.ContactNumber
	}
	if input.Instagram != nil {
		profile.Instagram = *input.Instagram
	}
	if input.Facebook != nil {
		profile.Facebook = *input.Facebook
	}
	if input.Twitter != nil {
		profile.Twitter = *input.Twitter
	}
	if input.ProfilePictureURL != nil {
		profile.ProfilePictureURL = *input.ProfilePictureURL
	}
	if input.ArtSampleURLs != nil {
		profile.ArtSampleURLs = input.ArtSampleURLs
	}
	if input.PushToken != nil {
		profile.PushToken = *input.PushToken
	}
}
