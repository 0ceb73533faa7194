package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rangriti/internal/delivery/http/response"
	"rangriti/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorkshopHandler holds dependencies for the workshop schedule endpoints.
type WorkshopHandler struct {
	uc     usecase.WorkshopUsecase
	logger *slog.Logger
}

// NewWorkshopHandler is the constructor for WorkshopHandler, injected by Fx.
func NewWorkshopHandler(uc usecase.WorkshopUsecase, logger *slog.Logger) *WorkshopHandler {
	return &WorkshopHandler{
		uc:     uc,
		logger: logger,
	}
}

// createWorkshopRequest carries the workshop fields; the date travels as a
// plain "YYYY-MM-DD" string and is parsed here.
type createWorkshopRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Location        string  `json:"location"`
	MaxParticipants int     `json:"maxParticipants"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

// ListCalendar returns the whole schedule projected into calendar events.
func (h *WorkshopHandler) ListCalendar(c echo.Context) error {
	events, err := h.uc.ListCalendar(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "Workshops retrieved successfully")
}

// CreateWorkshop schedules a workshop owned by the authenticated artist.
func (h *WorkshopHandler) CreateWorkshop(c echo.Context) error {
	artistID, ok := actingUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createWorkshopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workshop input")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid workshop date, expected YYYY-MM-DD")
	}

	workshop, err := h.uc.CreateWorkshop(c.Request().Context(), artistID, &usecase.CreateWorkshopInput{
		Title:           req.Title,
		Description:     req.Description,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		Category:        req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWorkshopView(workshop), "Workshop created successfully")
}

// WorkshopShareQR renders a PNG QR code linking to the workshop page.
func (h *WorkshopHandler) WorkshopShareQR(c echo.Context) error {
	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid workshop ID")
	}

	png, err := h.uc.WorkshopShareQR(c.Request().Context(), workshopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
