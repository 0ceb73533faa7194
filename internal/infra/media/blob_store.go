// Package media hosts uploaded images in a blob bucket and serves them by URL.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"rangriti/config"
	"rangriti/internal/domain/lifecycle"
	"rangriti/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by the bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobImageStore implements ImageStore on top of a gocloud.dev bucket.
// The bucketUrl scheme picks the backend: file:// in development,
// gs:// in production, mem:// in tests.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the image store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStore opens the configured bucket and manages its lifecycle.
func NewBlobImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Uploads
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("uploads bucket url is required")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploads bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload writes the image under a unique key and returns its public URL.
// The key keeps the original extension so content sniffing stays cheap.
func (s *blobImageStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s%s",
		time.Now().UTC().Format("2006/01"),
		uuid.New(),
		strings.ToLower(path.Ext(filename)),
	)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return "", errors.Wrap(err, "failed to write image")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image write")
	}

	s.logger.Info("image uploaded",
		slog.String("key", key),
		slog.String("contentType", contentType),
	)

	return s.publicBaseURL + "/" + key, nil
}
