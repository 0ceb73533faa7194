package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for hosting uploaded images. Product and
// profile pictures are persisted through it and referenced by URL only.
type ImageStore interface {
	// Upload writes the image under a unique key and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
