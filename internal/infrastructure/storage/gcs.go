package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/narwhalmedia/catalog/pkg/config"
)

// GCSStorage keeps objects in a Google Cloud Storage bucket.
type GCSStorage struct {
	client *gcs.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewGCSStorage uses the application default credentials.
func NewGCSStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger,
	}, nil
}

func (s *GCSStorage) Put(ctx context.Context, obj *Object) error {
	w := s.client.Bucket(s.bucket).Object(joinKey(s.prefix, obj.Key)).NewWriter(ctx)
	w.ContentType = obj.ContentType
	w.Metadata = map[string]string{nameMetadataKey: obj.Name}

	if _, err := w.Write(obj.Content); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to upload to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to upload to GCS: %w", err)
	}
	return nil
}

func (s *GCSStorage) Get(ctx context.Context, key string) (*Object, error) {
	handle := s.client.Bucket(s.bucket).Object(joinKey(s.prefix, key))

	attrs, err := handle.Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat GCS object: %w", err)
	}

	r, err := handle.NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open GCS object: %w", err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read GCS object: %w", err)
	}

	return &Object{
		Key:         key,
		Name:        attrs.Metadata[nameMetadataKey],
		ContentType: attrs.ContentType,
		Content:     content,
	}, nil
}

func (s *GCSStorage) DeleteAll(ctx context.Context, prefix string) error {
	bucket := s.client.Bucket(s.bucket)
	it := bucket.Objects(ctx, &gcs.Query{Prefix: joinKey(s.prefix, prefix)})

	var removed int
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list GCS objects: %w", err)
		}
		if err := bucket.Object(attrs.Name).Delete(ctx); err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
			return fmt.Errorf("failed to delete from GCS: %w", err)
		}
		removed++
	}

	s.logger.Debug("Deleted GCS objects",
		zap.String("bucket", s.bucket),
		zap.String("prefix", prefix),
		zap.Int("objects", removed))
	return nil
}

// Close releases the client.
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
