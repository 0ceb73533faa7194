package service

import "context"

// SpeechService defines the interface for the text-to-speech integration.
type SpeechService interface {
	// Synthesize converts text into audio bytes and returns the content type.
	Synthesize(ctx context.Context, text string) (audio []byte, contentType string, err error)
}
