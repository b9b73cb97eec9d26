package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const metaSuffix = ".meta.json"

type localMeta struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
}

// LocalStorage keeps objects as files below basePath. The name and content
// type of each object live in a sidecar file next to it.
type LocalStorage struct {
	basePath string
	logger   *zap.Logger
}

// NewLocalStorage creates basePath when missing.
func NewLocalStorage(basePath string, logger *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base path: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		logger:   logger,
	}, nil
}

func (s *LocalStorage) Put(ctx context.Context, obj *Object) error {
	path := s.path(obj.Key)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, obj.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	meta, err := json.Marshal(localMeta{Name: obj.Name, ContentType: obj.ContentType})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path+metaSuffix, meta, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) (*Object, error) {
	path := s.path(key)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var meta localMeta
	raw, err := os.ReadFile(path + metaSuffix)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("failed to decode metadata of %s: %w", key, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	return &Object{
		Key:         key,
		Name:        meta.Name,
		ContentType: meta.ContentType,
		Content:     content,
	}, nil
}

func (s *LocalStorage) DeleteAll(ctx context.Context, prefix string) error {
	var removed int
	err := filepath.WalkDir(s.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.basePath, path)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(filepath.ToSlash(rel), prefix) {
			return nil
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		removed++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", prefix, err)
	}

	// Drop the directory the prefix names once it is empty.
	if dir := strings.TrimSuffix(prefix, "/"); dir != prefix {
		_ = os.Remove(s.path(dir))
	}

	s.logger.Debug("Deleted local objects",
		zap.String("prefix", prefix),
		zap.Int("files", removed))
	return nil
}

func (s *LocalStorage) path(key string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(key))
}
