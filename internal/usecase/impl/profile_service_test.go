package impl

import (
	"context"
	"testing"

	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	mockrepo "rangriti/internal/mocks/repository"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockrepo.MockRepositoryFactory) {
	t.Helper()

	factory := mockrepo.NewMockRepositoryFactory()
	txManager := &mockrepo.MockTransactionManager{Factory: factory}
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	return service, factory
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	service, factory := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	factory.Users.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_ArtistFields(t *testing.T) {
	service, factory := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	newBio := "Warli painter from Thane"
	newInstagram := "@warli.meera"
	samples := []string{"https://cdn.example.com/sample1.png"}

	factory.Users.On("FindByID", ctx, userID).Return(&entity.User{
		ID:            userID,
		Name:          "Meera",
		ArtistProfile: &entity.ArtistProfile{ArtistName: "Meera"},
	}, nil)
	factory.Users.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Bio:           &newBio,
		Instagram:     &newInstagram,
		ArtSampleURLs: samples,
	})

	require.NoError(t, err)
	assert.Equal(t, newBio, updated.ArtistProfile.Bio)
	assert.Equal(t, newInstagram, updated.ArtistProfile.Instagram)
	assert.Equal(t, samples, updated.ArtistProfile.ArtSampleURLs)
}

func TestProfileService_UpdateProfile_IgnoresOtherKindFields(t *testing.T) {
	service, factory := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := "44 Hill Road, Mumbai"
	artistName := "Should Not Apply"

	factory.Users.On("FindByID", ctx, userID).Return(&entity.User{
		ID:           userID,
		Name:         "Asha",
		BuyerProfile: &entity.BuyerProfile{ShippingAddress: "old address"},
	}, nil)
	factory.Users.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		ShippingAddress: &address,
		ArtistName:      &artistName,
	})

	require.NoError(t, err)
	assert.Equal(t, address, updated.BuyerProfile.ShippingAddress)
	assert.Nil(t, updated.ArtistProfile)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	service, factory := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	name := "New Name"

	factory.Users.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	updated, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: &name})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	factory.Users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
