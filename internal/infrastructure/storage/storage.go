// Package storage keeps the binary media of videos on the local file system,
// S3 or Google Cloud Storage.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/narwhalmedia/catalog/pkg/config"
)

// ErrNotFound is returned when no object is stored under a key.
var ErrNotFound = errors.New("storage key not found")

// Object is a stored blob with the metadata needed to serve it back.
type Object struct {
	Key         string
	Name        string
	ContentType string
	Content     []byte
}

// Storage is a flat key/value blob store.
type Storage interface {
	// Put writes obj under obj.Key, replacing what was there
	Put(ctx context.Context, obj *Object) error
	// Get reads the object under key or returns ErrNotFound
	Get(ctx context.Context, key string) (*Object, error)
	// DeleteAll removes every object whose key starts with prefix
	DeleteAll(ctx context.Context, prefix string) error
}

// New builds the storage selected by cfg.
func New(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (Storage, error) {
	switch cfg.Type {
	case config.StorageLocal:
		return NewLocalStorage(cfg.LocalPath, logger)
	case config.StorageS3:
		return NewS3Storage(ctx, cfg, logger)
	case config.StorageGCS:
		return NewGCSStorage(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage type: %q", cfg.Type)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
