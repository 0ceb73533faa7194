package impl

import (
	"context"
	"testing"
	"time"

	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	"rangriti/internal/domain/service"
	mockrepo "rangriti/internal/mocks/repository"
	mocksvc "rangriti/internal/mocks/service"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockrepo.MockTransactionManager
	factory      *mockrepo.MockRepositoryFactory
	hasher       *mocksvc.MockPasswordHasher
	tokenService *mocksvc.MockTokenService
	mailService  *mocksvc.MockMailService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	factory := mockrepo.NewMockRepositoryFactory()
	txManager := &mockrepo.MockTransactionManager{Factory: factory}
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)

	hasher := &mocksvc.MockPasswordHasher{}
	tokenService := &mocksvc.MockTokenService{}
	mailService := &mocksvc.MockMailService{}

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		MailService:  mailService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      factory,
		hasher:       hasher,
		tokenService: tokenService,
		mailService:  mailService,
	}
}

func TestUserService_RegisterBuyer_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterBuyerInput{
		Name:            "Asha Rao",
		Email:           "asha@example.com",
		Password:        "Password123!",
		ShippingAddress: "12 Lake Road, Pune",
	}

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	fx.factory.Users.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.factory.Users.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = uuid.New()
		}).
		Return(nil)
	fx.factory.Auths.On("CreateAuthentication", ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.Provider == entity.ProviderTypeEmail &&
			auth.ProviderUserID == input.Email &&
			auth.PasswordHash == "hashed_password"
	})).Return(nil)
	fx.mailService.On("SendWelcome", ctx, input.Email, input.Name).Return(nil)

	output, err := fx.service.RegisterBuyer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleBuyer, output.User.Role())
	require.NotNil(t, output.User.BuyerProfile)
	assert.Equal(t, input.ShippingAddress, output.User.BuyerProfile.ShippingAddress)
	fx.factory.Users.AssertExpectations(t)
	fx.factory.Auths.AssertExpectations(t)
}

func TestUserService_RegisterArtist_DefaultsArtistName(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterArtistInput{
		Name:     "Meera Joshi",
		Email:    "meera@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.factory.Users.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.factory.Users.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.factory.Auths.On("CreateAuthentication", ctx, mock.Anything).Return(nil)
	fx.mailService.On("SendWelcome", ctx, input.Email, input.Name).Return(nil)

	output, err := fx.service.RegisterArtist(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.User.ArtistProfile)
	assert.Equal(t, "Meera Joshi", output.User.ArtistProfile.ArtistName)
	assert.Equal(t, entity.RoleArtist, output.User.Role())
}

func TestUserService_Register_DuplicateEmailConflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:            uuid.New(),
		Email:         "taken@example.com",
		ArtistProfile: &entity.ArtistProfile{ArtistName: "Taken"},
	}

	fx.hasher.On("ValidatePasswordStrength", mock.Anything).Return(nil)
	fx.hasher.On("Hash", mock.Anything).Return("hashed_password", nil)

	// The email is held by an artist; a buyer registration must still conflict.
	fx.factory.Users.On("FindByEmail", ctx, existing.Email).Return(existing, nil)

	output, err := fx.service.RegisterBuyer(ctx, &usecase.RegisterBuyerInput{
		Name:     "Someone Else",
		Email:    existing.Email,
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.factory.Users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.hasher.On("ValidatePasswordStrength", "weak").
		Return(errors.New("password is too short"))

	output, err := fx.service.RegisterBuyer(ctx, &usecase.RegisterBuyerInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "weak",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_BuyerRedirect(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	buyer := &entity.User{
		ID:           userID,
		Email:        "asha@example.com",
		BuyerProfile: &entity.BuyerProfile{},
	}
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "stored_hash"}

	fx.factory.Auths.On("FindAuthentication", ctx, entity.ProviderTypeEmail, buyer.Email).Return(authRecord, nil)
	fx.factory.Users.On("FindByID", ctx, userID).Return(buyer, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	fx.tokenService.On("GenerateTokens", userID, []string{"buyer"}).Return("access", "refresh", nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh_hash")
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.factory.RefreshTokens.On("CreateRefreshToken", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == userID && token.TokenHash == "refresh_hash"
	})).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: buyer.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "/marketplace", output.Redirect)
}

func TestUserService_Login_ArtistRedirect(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	artist := &entity.User{
		ID:            userID,
		Email:         "meera@example.com",
		ArtistProfile: &entity.ArtistProfile{ArtistName: "Meera"},
	}
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "stored_hash"}

	fx.factory.Auths.On("FindAuthentication", ctx, entity.ProviderTypeEmail, artist.Email).Return(authRecord, nil)
	fx.factory.Users.On("FindByID", ctx, userID).Return(artist, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	fx.tokenService.On("GenerateTokens", userID, []string{"artist"}).Return("access", "refresh", nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh_hash")
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.factory.RefreshTokens.On("CreateRefreshToken", ctx, mock.Anything).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: artist.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "/artist/dashboard", output.Redirect)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "stored_hash"}

	fx.factory.Auths.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "asha@example.com").Return(authRecord, nil)
	fx.factory.Users.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, BuyerProfile: &entity.BuyerProfile{}}, nil)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "asha@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.factory.Auths.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "nobody@example.com").
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "Password123!"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Refresh_RotatesSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, BuyerProfile: &entity.BuyerProfile{}}

	fx.tokenService.On("ValidateRefreshToken", "old_refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.On("HashToken", "old_refresh").Return("old_hash")
	fx.factory.RefreshTokens.On("FindRefreshTokenByHash", ctx, "old_hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old_hash"}, nil)
	fx.factory.RefreshTokens.On("DeleteRefreshTokenByHash", ctx, "old_hash").Return(nil)
	fx.factory.Users.On("FindByID", ctx, userID).Return(user, nil)
	fx.tokenService.On("GenerateTokens", userID, []string{"buyer"}).Return("new_access", "new_refresh", nil)
	fx.tokenService.On("HashToken", "new_refresh").Return("new_hash")
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.factory.RefreshTokens.On("CreateRefreshToken", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.TokenHash == "new_hash"
	})).Return(nil)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old_refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
	fx.factory.RefreshTokens.AssertCalled(t, "DeleteRefreshTokenByHash", ctx, "old_hash")
}

func TestUserService_Refresh_UnknownSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.On("ValidateRefreshToken", "stale").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.On("HashToken", "stale").Return("stale_hash")
	fx.factory.RefreshTokens.On("FindRefreshTokenByHash", ctx, "stale_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_AlreadyRevokedIsSuccess(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.On("ValidateRefreshToken", "refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh_hash")
	fx.factory.RefreshTokens.On("DeleteRefreshTokenByHash", ctx, "refresh_hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}

func TestUserService_Logout_AllDevices(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.On("ValidateRefreshToken", "refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh_hash")
	fx.factory.RefreshTokens.On("DeleteRefreshTokensByUserID", ctx, userID).Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh", AllDevices: true})

	require.NoError(t, err)
	fx.factory.RefreshTokens.AssertNotCalled(t, "DeleteRefreshTokenByHash", mock.Anything, mock.Anything)
}
