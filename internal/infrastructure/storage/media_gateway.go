package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/narwhalmedia/catalog/internal/domain/video"
)

// MediaGateway implements video.MediaResourceGateway over a Storage. Every
// slot of a video maps to one key, videoId-{id}/type-{slot}.
type MediaGateway struct {
	storage Storage
	logger  *zap.Logger
}

// NewMediaGateway creates a media gateway
func NewMediaGateway(storage Storage, logger *zap.Logger) *MediaGateway {
	return &MediaGateway{storage: storage, logger: logger}
}

var _ video.MediaResourceGateway = (*MediaGateway)(nil)

// StoreAudioVideo stores a VIDEO or TRAILER resource and returns it as a
// media waiting for the encoder.
func (g *MediaGateway) StoreAudioVideo(ctx context.Context, id video.ID, resource *video.Resource) (*video.AudioVideoMedia, error) {
	if !resource.Type.IsAudioVideo() {
		return nil, fmt.Errorf("%s is not an audio video slot", resource.Type)
	}

	key, checksum, err := g.store(ctx, id, resource)
	if err != nil {
		return nil, err
	}
	return video.NewAudioVideoMedia(checksum, resource.Name, key), nil
}

// StoreImage stores a BANNER, THUMBNAIL or THUMBNAIL_HALF resource.
func (g *MediaGateway) StoreImage(ctx context.Context, id video.ID, resource *video.Resource) (*video.ImageMedia, error) {
	if resource.Type.IsAudioVideo() {
		return nil, fmt.Errorf("%s is not an image slot", resource.Type)
	}

	key, checksum, err := g.store(ctx, id, resource)
	if err != nil {
		return nil, err
	}
	return video.NewImageMedia(checksum, resource.Name, key), nil
}

// GetResource returns nil when the slot holds nothing.
func (g *MediaGateway) GetResource(ctx context.Context, id video.ID, mediaType video.MediaType) (*video.Resource, error) {
	obj, err := g.storage.Get(ctx, Key(id, mediaType))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return video.NewResource(obj.Content, obj.ContentType, obj.Name, mediaType), nil
}

// ClearResources removes every slot of the video.
func (g *MediaGateway) ClearResources(ctx context.Context, id video.ID) error {
	if err := g.storage.DeleteAll(ctx, Prefix(id)); err != nil {
		return err
	}
	g.logger.Info("Cleared video media", zap.String("video_id", id.String()))
	return nil
}

func (g *MediaGateway) store(ctx context.Context, id video.ID, resource *video.Resource) (string, string, error) {
	key := Key(id, resource.Type)
	err := g.storage.Put(ctx, &Object{
		Key:         key,
		Name:        resource.Name,
		ContentType: resource.ContentType,
		Content:     resource.Content,
	})
	if err != nil {
		return "", "", err
	}

	g.logger.Debug("Stored video media",
		zap.String("key", key),
		zap.Int("bytes", len(resource.Content)))
	return key, Checksum(resource.Content), nil
}

// Prefix is the key prefix shared by every slot of a video.
func Prefix(id video.ID) string {
	return fmt.Sprintf("videoId-%s/", id)
}

// Key is the storage key of one slot.
func Key(id video.ID, mediaType video.MediaType) string {
	return fmt.Sprintf("%stype-%s", Prefix(id), mediaType)
}

// Checksum is the hex encoded SHA-256 of content.
func Checksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
