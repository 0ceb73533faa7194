package impl

import (
	"context"
	"log/slog"

	deliverycontext "rangriti/internal/delivery/context"
	"rangriti/internal/domain/entity"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/repository"
	"rangriti/internal/domain/service"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultWorkshopLocation = "Online"

// workshopService implements the WorkshopUsecase interface.
type workshopService struct {
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// WorkshopServiceParams holds dependencies for WorkshopService, injected by Fx.
type WorkshopServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewWorkshopService is the constructor for workshopService.
func NewWorkshopService(params WorkshopServiceParams) usecase.WorkshopUsecase {
	return &workshopService{
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *workshopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCalendar projects the whole schedule into calendar events.
func (srv *workshopService) ListCalendar(ctx context.Context) ([]entity.CalendarEvent, error) {
	var workshops []*entity.Workshop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		workshops, listErr = repoFactory.WorkshopRepo().ListAll(ctx)

		return errors.Wrap(listErr, "failed to list workshops")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list workshop calendar", slog.Any("error", err))

		return nil, err
	}

	events := make([]entity.CalendarEvent, 0, len(workshops))
	for _, w := range workshops {
		events = append(events, w.ToCalendarEvent())
	}

	return events, nil
}

// CreateWorkshop schedules a workshop, freezing the artist's display name.
func (srv *workshopService) CreateWorkshop(ctx context.Context, artistID uuid.UUID, input *usecase.CreateWorkshopInput) (*entity.Workshop, error) {
	if input.MaxParticipants < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("maxParticipants must be at least 1")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	location := input.Location
	if location == "" {
		location = defaultWorkshopLocation
	}

	var workshop *entity.Workshop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		artist, findErr := repoFactory.UserRepo().FindByID(ctx, artistID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load artist for workshop")
		}
		if artist.ArtistProfile == nil {
			return errors.Wrap(domainerrors.ErrForbidden, "workshops require an artist account")
		}

		workshop = &entity.Workshop{
			ArtistID:        artistID,
			ArtistName:      artist.ArtistProfile.ArtistName,
			Title:           input.Title,
			Description:     input.Description,
			Date:            input.Date,
			StartTime:       input.StartTime,
			EndTime:         input.EndTime,
			Location:        location,
			MaxParticipants: input.MaxParticipants,
			Price:           input.Price,
			Category:        input.Category,
		}

		return errors.Wrap(repoFactory.WorkshopRepo().Create(ctx, workshop), "failed to create workshop")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create workshop", slog.Any("artistID", artistID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Workshop created", slog.Any("workshopID", workshop.ID), slog.Any("artistID", artistID))

	return workshop, nil
}

// WorkshopShareQR renders a PNG QR code linking to the workshop page.
func (srv *workshopService) WorkshopShareQR(ctx context.Context, workshopID uuid.UUID) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, findErr := repoFactory.WorkshopRepo().FindByID(ctx, workshopID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrWorkshopNotFound) {
				return errors.Wrap(domainerrors.ErrWorkshopNotFound, "workshop not found")
			}

			return errors.Wrap(findErr, "failed to load workshop for QR")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateWorkshopQR(workshopID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate workshop QR", slog.Any("workshopID", workshopID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate workshop QR")
	}

	return png, nil
}
