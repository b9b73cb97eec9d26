package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/repository"
)

var videoAssociations = []string{"Categories", "Genres", "CastMembers", "AudioVideo", "Images"}

// VideoGateway implements video.Gateway. Reference links and media rows are
// rewritten on every update.
type VideoGateway struct {
	db *gorm.DB
}

// NewVideoGateway creates a new GORM video gateway
func NewVideoGateway(db *gorm.DB) *VideoGateway {
	return &VideoGateway{db: db}
}

var _ video.Gateway = (*VideoGateway)(nil)

// Create inserts the video with its links and media
func (g *VideoGateway) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	model := &VideoModel{}
	model.FromDomain(v)
	if err := repository.Create(ctx, g.db, model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update overwrites the video row and replaces its links and media
func (g *VideoGateway) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	model := &VideoModel{}
	model.FromDomain(v)

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		return replaceVideoChildren(tx, model)
	})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByID returns the video with links and media, nil when absent
func (g *VideoGateway) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	model, err := repository.FindOptional[VideoModel](ctx, g.db, id.String(), videoAssociations...)
	if err != nil || model == nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes the video, its links and its media rows
func (g *VideoGateway) DeleteByID(ctx context.Context, id video.ID) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceVideoChildren(tx, &VideoModel{ID: id.String()}); err != nil {
			return err
		}
		return repository.Delete[VideoModel](ctx, tx, id.String())
	})
}

func replaceVideoChildren(tx *gorm.DB, model *VideoModel) error {
	if err := replaceChildren(tx, "video_id", model.ID, model.Categories); err != nil {
		return err
	}
	if err := replaceChildren(tx, "video_id", model.ID, model.Genres); err != nil {
		return err
	}
	if err := replaceChildren(tx, "video_id", model.ID, model.CastMembers); err != nil {
		return err
	}
	if err := replaceChildren(tx, "video_id", model.ID, model.AudioVideo); err != nil {
		return err
	}
	return replaceChildren(tx, "video_id", model.ID, model.Images)
}
