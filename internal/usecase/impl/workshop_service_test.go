package impl

import (
	"context"
	"testing"
	"time"

	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	mockrepo "rangriti/internal/mocks/repository"
	mocksvc "rangriti/internal/mocks/service"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workshopServiceFixtures struct {
	service       usecase.WorkshopUsecase
	txManager     *mockrepo.MockTransactionManager
	factory       *mockrepo.MockRepositoryFactory
	qrcodeService *mocksvc.MockQRCodeService
}

func createTestWorkshopService(t *testing.T) workshopServiceFixtures {
	t.Helper()

	factory := mockrepo.NewMockRepositoryFactory()
	txManager := &mockrepo.MockTransactionManager{Factory: factory}
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)

	qrcodeService := &mocksvc.MockQRCodeService{}

	service := NewWorkshopService(WorkshopServiceParams{
		TxManager:     txManager,
		QRCodeService: qrcodeService,
		Logger:        newDiscardLogger(),
	})

	return workshopServiceFixtures{
		service:       service,
		txManager:     txManager,
		factory:       factory,
		qrcodeService: qrcodeService,
	}
}

func TestWorkshopService_CreateWorkshop_FreezesArtistName(t *testing.T) {
	fx := createTestWorkshopService(t)

	ctx := context.Background()
	artistID := uuid.New()

	fx.factory.Users.On("FindByID", ctx, artistID).Return(&entity.User{
		ID:            artistID,
		ArtistProfile: &entity.ArtistProfile{ArtistName: "Meera Joshi"},
	}, nil)
	fx.factory.Workshops.On("Create", ctx, mock.MatchedBy(func(workshop *entity.Workshop) bool {
		return workshop.ArtistID == artistID && workshop.ArtistName == "Meera Joshi"
	})).Return(nil)

	workshop, err := fx.service.CreateWorkshop(ctx, artistID, &usecase.CreateWorkshopInput{
		Title:           "Intro to Block Printing",
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "12:00",
		Location:        "Jaipur Studio",
		MaxParticipants: 12,
		Price:           500,
	})

	require.NoError(t, err)
	assert.Equal(t, "Meera Joshi", workshop.ArtistName)
	assert.Equal(t, "Jaipur Studio", workshop.Location)
}

func TestWorkshopService_CreateWorkshop_DefaultsLocationOnline(t *testing.T) {
	fx := createTestWorkshopService(t)

	ctx := context.Background()
	artistID := uuid.New()

	fx.factory.Users.On("FindByID", ctx, artistID).Return(&entity.User{
		ID:            artistID,
		ArtistProfile: &entity.ArtistProfile{ArtistName: "Meera"},
	}, nil)
	fx.factory.Workshops.On("Create", ctx, mock.Anything).Return(nil)

	workshop, err := fx.service.CreateWorkshop(ctx, artistID, &usecase.CreateWorkshopInput{
		Title:           "Virtual Warli Workshop",
		Date:            time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		MaxParticipants: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, "Online", workshop.Location)
}

func TestWorkshopService_CreateWorkshop_RequiresParticipants(t *testing.T) {
	fx := createTestWorkshopService(t)

	workshop, err := fx.service.CreateWorkshop(context.Background(), uuid.New(), &usecase.CreateWorkshopInput{
		Title:           "Empty Room",
		MaxParticipants: 0,
	})

	require.Error(t, err)
	assert.Nil(t, workshop)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.factory.Workshops.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkshopService_CreateWorkshop_BuyerForbidden(t *testing.T) {
	fx := createTestWorkshopService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	fx.factory.Users.On("FindByID", ctx, buyerID).Return(&entity.User{
		ID:           buyerID,
		BuyerProfile: &entity.BuyerProfile{},
	}, nil)

	workshop, err := fx.service.CreateWorkshop(ctx, buyerID, &usecase.CreateWorkshopInput{
		Title:           "Not an Artist",
		MaxParticipants: 5,
	})

	require.Error(t, err)
	assert.Nil(t, workshop)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestWorkshopService_ListCalendar_ProjectsEvents(t *testing.T) {
	fx := createTestWorkshopService(t)

	ctx := context.Background()
	workshopID := uuid.New()

	fx.factory.Workshops.On("ListAll", ctx).Return([]*entity.Workshop{
		{
			ID:         workshopID,
			ArtistName: "Meera",
			Title:      "Madhubani Basics",
			Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			StartTime:  "10:00",
			EndTime:    "12:00",
			Location:   "Online",
		},
	}, nil)

	events, err := fx.service.ListCalendar(ctx)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, workshopID.String(), events[0].ID)
	assert.Equal(t, "Madhubani Basics", events[0].Title)
	assert.Equal(t, "2026-03-14", events[0].Start)
}

func TestWorkshopService_WorkshopShareQR_Success(t *testing.T) {
	fx := createTestWorkshopService(t)

	ctx := context.Background()
	workshopID := uuid.New()

	fx.factory.Workshops.On("FindByID", ctx, workshopID).
		Return(&entity.Workshop{ID: workshopID}, nil)
	fx.qrcodeService.On("GenerateWorkshopQR", workshopID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.WorkshopShareQR(ctx, workshopID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestWorkshopService_WorkshopShareQR_NotFound(t *testing.T) {
	fx := createTestWorkshopService(t)

	ctx := context.Background()
	workshopID := uuid.New()

	fx.factory.Workshops.On("FindByID", ctx, workshopID).Return(nil, repository.ErrWorkshopNotFound)

	png, err := fx.service.WorkshopShareQR(ctx, workshopID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrWorkshopNotFound)
	fx.qrcodeService.AssertNotCalled(t, "GenerateWorkshopQR", mock.Anything)
}
