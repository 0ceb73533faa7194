package handler

import (
	"log/slog"
	"net/http"

	"rangriti/internal/delivery/http/response"
	"rangriti/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler accepts multipart image uploads and hands them to the
// configured image store.
type MediaHandler struct {
	store  service.ImageStore
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(store service.ImageStore, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		store:  store,
		logger: logger,
	}
}

// Upload persists the uploaded file and returns its public URL for use in
// product and profile image fields.
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	url, err := h.store.Upload(c.Request().Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "File uploaded successfully")
}
