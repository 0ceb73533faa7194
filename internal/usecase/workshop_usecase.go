package usecase

import (
	"context"
	"time"

	"rangriti/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWorkshopInput defines the data required to schedule a workshop.
type CreateWorkshopInput struct {
	Title           string
	Description     string
	Date            time.Time
	StartTime       string
	EndTime         string
	Location        string
	MaxParticipants int
	Price           float64
	Category        string
}

// WorkshopUsecase defines the interface for the workshop schedule.
type WorkshopUsecase interface {
	// ListCalendar projects the whole schedule into calendar events.
	ListCalendar(ctx context.Context) ([]entity.CalendarEvent, error)

	// CreateWorkshop schedules a workshop owned by the acting artist,
	// freezing the artist's display name.
	CreateWorkshop(ctx context.Context, artistID uuid.UUID, input *CreateWorkshopInput) (*entity.Workshop, error)

	// WorkshopShareQR renders a PNG QR code linking to the workshop page.
	WorkshopShareQR(ctx context.Context, workshopID uuid.UUID) ([]byte, error)
}
