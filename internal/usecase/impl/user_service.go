// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rangriti/internal/delivery/context"
	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	"rangriti/internal/domain/service"
	"rangriti/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Client landing paths per account kind, returned with the login response.
const (
	redirectArtist = "/artist/dashboard"
	redirectBuyer  = "/marketplace"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailService  service.MailService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailService  service.MailService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailService:  params.MailService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBuyer orchestrates the registration of a buyer account.
func (srv *userService) RegisterBuyer(ctx context.Context, input *usecase.RegisterBuyerInput) (*usecase.RegisterOutput, error) {
	newUser := &entity.User{
		Name:  input.Name,
		Email: input.Email,
		BuyerProfile: &entity.BuyerProfile{
			ShippingAddress: input.ShippingAddress,
		},
	}

	return srv.executeRegistration(ctx, entity.RoleBuyer, input.Email, input.Password, newUser)
}

// RegisterArtist orchestrates the registration of an artist account.
func (srv *userService) RegisterArtist(ctx context.Context, input *usecase.RegisterArtistInput) (*usecase.RegisterOutput, error) {
	artistName := input.ArtistName
	if artistName == "" {
		artistName = input.Name
	}

	newUser := &entity.User{
		Name:  input.Name,
		Email: input.Email,
		ArtistProfile: &entity.ArtistProfile{
			ArtistName:     artistName,
			Specialization: input.Specialization,
			City:           input.City,
		},
	}

	return srv.executeRegistration(ctx, entity.RoleArtist, input.Email, input.Password, newUser)
}

// executeRegistration creates the account, its profile and its credential in
// one transaction. An email already registered under EITHER account kind is
// a conflict; accounts never accumulate a second profile kind.
func (srv *userService) executeRegistration(ctx context.Context, role entity.Role, email, password string, newUser *entity.User) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.Any("role", role), slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}

		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", role), slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	// Welcome mail is best-effort; registration already committed.
	if mailErr := srv.mailService.SendWelcome(ctx, newUser.Email, newUser.Name); mailErr != nil {
		srv.log(ctx).Warn("Failed to send welcome mail", slog.Any("userID", newUser.ID), slog.Any("error", mailErr))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the login process across both account kinds.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	var authRecord *entity.Authentication
	var loggedInUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		var findErr error
		authRecord, findErr = authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find authentication")
		}

		loggedInUser, findErr = userRepo.FindByID(ctx, authRecord.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load login user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Roles().ToStrings())
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, loggedInUser, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	redirect := redirectBuyer
	if loggedInUser.IsArtist() {
		redirect = redirectArtist
	}

	srv.log(ctx).Debug("Logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Redirect:     redirect,
		User:         loggedInUser,
	}, nil
}

// Refresh rotates a valid refresh token into a new token pair. The presented
// token's session is revoked so each refresh token is single-use.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var refreshedUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		userRepo := repoFactory.UserRepo()

		stored, findErr := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh session not found")
			}

			return errors.Wrap(findErr, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh session mismatch")
		}

		if delErr := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); delErr != nil {
			return errors.Wrap(delErr, "failed to rotate refresh token")
		}

		var loadErr error
		refreshedUser, loadErr = userRepo.FindByID(ctx, claims.UserID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to load user during refresh")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, err
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(refreshedUser.ID, refreshedUser.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during refresh")
	}

	if err := srv.persistRefreshToken(ctx, refreshedUser, refreshTokenString); err != nil {
		return nil, errors.Wrap(err, "failed to persist rotated refresh token")
	}

	srv.log(ctx).Debug("Refresh completed", slog.Any("userID", refreshedUser.ID))

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// Logout revokes the presented refresh token's session, or every session of
// the account when AllDevices is set.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Logout token validation failed", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "logout failed")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if input.AllDevices {
			return errors.Wrap(refreshRepo.DeleteRefreshTokensByUserID(ctx, claims.UserID), "failed to revoke all sessions")
		}

		if delErr := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); delErr != nil {
			// An already-revoked session is a successful logout.
			if errors.Is(delErr, repository.ErrRefreshTokenNotFound) {
				return nil
			}

			return errors.Wrap(delErr, "failed to revoke session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Logout failed", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Logout completed", slog.Any("userID", claims.UserID))

	return nil
}

func (srv *userService) persistRefreshToken(ctx context.Context, user *entity.User, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RefreshTokenRepo().CreateRefreshToken(ctx, newRefreshToken)
	})
}
