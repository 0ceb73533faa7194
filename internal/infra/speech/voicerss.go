// Package speech proxies text-to-speech synthesis through the VoiceRSS API.
package speech

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rangriti/config"
	domainerrors "rangriti/internal/domain/errors"
	"rangriti/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	voiceRSSEndpoint = "https://api.voicerss.org/"

	defaultLanguage = "en-us"
	defaultVoice    = "Mary"

	// VoiceRSS errors arrive as 200 responses with a text/plain body
	// starting with "ERROR", so the body has to be inspected either way.
	maxAudioBytes = 10 << 20
)

// voiceRSSService implements SpeechService against the VoiceRSS HTTP API.
type voiceRSSService struct {
	apiKey     string
	language   string
	voice      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewVoiceRSSService is the constructor for voiceRSSService.
func NewVoiceRSSService(cfg *config.Config, logger *slog.Logger) (service.SpeechService, error) {
	vr := cfg.VoiceRSS
	if vr == nil || vr.APIKey == "" {
		return nil, errors.New("voicerss api key is required")
	}

	language := vr.Language
	if language == "" {
		language = defaultLanguage
	}
	voice := vr.Voice
	if voice == "" {
		voice = defaultVoice
	}

	return &voiceRSSService{
		apiKey:   vr.APIKey,
		language: language,
		voice:    voice,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// Synthesize converts text into MP3 audio via VoiceRSS.
func (s *voiceRSSService) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("hl", s.language)
	params.Set("v", s.voice)
	params.Set("r", "0")
	params.Set("src", text)
	params.Set("c", "MP3")
	params.Set("f", "44khz_16bit_stereo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, voiceRSSEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", domainerrors.ErrUpstreamFailure.WrapMessage("voicerss request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("voicerss returned non-success status",
			slog.Int("status", resp.StatusCode),
		)

		return nil, "", domainerrors.ErrUpstreamFailure.WrapMessage("voicerss request failed")
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, "", domainerrors.ErrUpstreamFailure.WrapMessage("voicerss response unreadable")
	}

	if strings.HasPrefix(string(audio[:min(len(audio), 5)]), "ERROR") {
		s.logger.Warn("voicerss rejected the request",
			slog.String("reason", string(audio)),
		)

		return nil, "", domainerrors.ErrUpstreamFailure.WrapMessage("voicerss rejected the request")
	}

	return audio, "audio/mpeg", nil
}
