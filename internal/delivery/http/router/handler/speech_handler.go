package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"rangriti/internal/delivery/http/response"
	"rangriti/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SpeechHandler proxies text-to-speech requests to the upstream provider.
type SpeechHandler struct {
	speech service.SpeechService
	logger *slog.Logger
}

// NewSpeechHandler is the constructor for SpeechHandler, injected by Fx.
func NewSpeechHandler(speech service.SpeechService, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{
		speech: speech,
		logger: logger,
	}
}

type synthesizeRequest struct {
	Text string `json:"text"`
}

// Synthesize converts the posted text to audio and streams the bytes back.
func (h *SpeechHandler) Synthesize(c echo.Context) error {
	var req synthesizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid text-to-speech input")
	}

	if strings.TrimSpace(req.Text) == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Text is required")
	}

	audio, contentType, err := h.speech.Synthesize(c.Request().Context(), req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, contentType, audio)
}
