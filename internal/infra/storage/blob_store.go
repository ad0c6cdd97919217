// Package storage persists uploaded photos through a portable blob API.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register the file-based bucket driver for local deployments.
	_ "gocloud.dev/blob/fileblob"
	// Register the in-memory driver used by tests.
	_ "gocloud.dev/blob/memblob"

	"sayma/config"
	"sayma/internal/domain/lifecycle"
	"sayma/internal/domain/service"
)

// blobPhotoStore implements service.PhotoStore on top of a gocloud bucket.
type blobPhotoStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobPhotoStore opens the configured bucket and wraps it as a photo
// store. The returned closer detaches the bucket on shutdown.
func NewBlobPhotoStore(cfg *config.Config, logger *slog.Logger) (service.PhotoStore, func() error, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, nil, errors.New("storage.bucketUrl is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open bucket %s", cfg.Storage.BucketURL)
	}

	store := &blobPhotoStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
		logger:        logger,
	}

	return store, bucket.Close, nil
}

// NewBlobPhotoStoreFromBucket wraps an already-open bucket. Used by tests.
func NewBlobPhotoStoreFromBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.PhotoStore {
	return &blobPhotoStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Save writes the image under a collision-free key and returns its
// public URL.
func (s *blobPhotoStore) Save(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "store photo %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a stored photo by its public URL. Unknown keys are
// ignored so retried deletes stay idempotent.
func (s *blobPhotoStore) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.publicBaseURL+"/") {
		// Foreign URL, nothing to delete on our side.
		return nil
	}
	key := strings.TrimPrefix(url, s.publicBaseURL+"/")
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}
		s.logger.Warn("failed to delete photo", slog.String("key", key), slog.Any("error", err))

		return errors.Wrapf(err, "delete photo %s", key)
	}

	return nil
}
