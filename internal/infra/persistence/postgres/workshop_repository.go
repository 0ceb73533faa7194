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

// workshopRepository implements the domain.WorkshopRepository interface using GORM.
type workshopRepository struct {
	db *gorm.DB
}

// NewWorkshopRepository is the constructor for workshopRepository.
func NewWorkshopRepository(db *gorm.DB) repository.WorkshopRepository {
	return &workshopRepository{db: db}
}

// Create persists a new workshop.
func (repo *workshopRepository) Create(ctx context.Context, workshop *entity.Workshop) error {
	workshopM := fromWorkshopDomain(workshop)

	if err := repo.db.WithContext(ctx).Create(workshopM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWorkshopNotFound.WrapMessage("invalid artist reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workshop")
	}

	workshop.ID = workshopM.ID
	workshop.CreatedAt = workshopM.CreatedAt
	workshop.UpdatedAt = workshopM.UpdatedAt

	return nil
}

// FindByID retrieves a single workshop.
func (repo *workshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error) {
	var workshopM model.WorkshopModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&workshopM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkshopNotFound
		}

		return nil, errors.Wrap(err, "failed to find workshop by id")
	}

	return toWorkshopDomain(&workshopM), nil
}

// ListAll returns the entire schedule ordered by date ascending.
func (repo *workshopRepository) ListAll(ctx context.Context) ([]*entity.Workshop, error) {
	return repo.list(ctx, nil)
}

// ListByArtist returns the artist's own workshops, date ascending.
func (repo *workshopRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]*entity.Workshop, error) {
	return repo.list(ctx, &artistID)
}

func (repo *workshopRepository) list(ctx context.Context, artistID *uuid.UUID) ([]*entity.Workshop, error) {
	query := repo.db.WithContext(ctx).Model(&model.WorkshopModel{})
	if artistID != nil {
		query = query.Where("artist_id = ?", *artistID)
	}

	var workshopMs []*model.WorkshopModel
	if err := query.Order("date ASC, start_time ASC").Find(&workshopMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workshops")
	}

	workshops := make([]*entity.Workshop, 0, len(workshopMs))
	for _, w := range workshopMs {
		workshops = append(workshops, toWorkshopDomain(w))
	}

	return workshops, nil
}

// toWorkshopDomain converts a GORM WorkshopModel to a domain entity.
func toWorkshopDomain(data *model.WorkshopModel) *entity.Workshop {
	if data == nil {
		return nil
	}

	return &entity.Workshop{
		ID:              data.ID,
		ArtistID:        data.ArtistID,
		ArtistName:      data.ArtistName,
		Title:           data.Title,
		Description:     data.Description,
		Date:            data.Date,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		Location:        data.Location,
		MaxParticipants: data.MaxParticipants,
		Price:           data.Price,
		Category:        data.Category,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromWorkshopDomain converts a domain entity to a GORM WorkshopModel.
func fromWorkshopDomain(data *entity.Workshop) *model.WorkshopModel {
	if data == nil {
		return nil
	}

	return &model.WorkshopModel{
		ID:              data.ID,
		ArtistID:        data.ArtistID,
		ArtistName:      data.ArtistName,
		Title:           data.Title,
		Description:     data.Description,
		Date:            data.Date,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		Location:        data.Location,
		MaxParticipants: data.MaxParticipants,
		Price:           data.Price,
		Category:        data.Category,
	}
}
