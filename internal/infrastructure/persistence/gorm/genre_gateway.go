package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/identifier"
	"github.com/narwhalmedia/catalog/pkg/repository"
)

// GenreGateway implements genre.Gateway. Category links live in
// genres_categories and are rewritten on every update.
type GenreGateway struct {
	db *gorm.DB
}

// NewGenreGateway creates a new GORM genre gateway
func NewGenreGateway(db *gorm.DB) *GenreGateway {
	return &GenreGateway{db: db}
}

var _ genre.Gateway = (*GenreGateway)(nil)

// Create inserts the genre and its category links
func (g *GenreGateway) Create(ctx context.Context, gen *genre.Genre) (*genre.Genre, error) {
	model := &GenreModel{}
	model.FromDomain(gen)
	if err := repository.Create(ctx, g.db, model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update overwrites the genre row and replaces its category links
func (g *GenreGateway) Update(ctx context.Context, gen *genre.Genre) (*genre.Genre, error) {
	model := &GenreModel{}
	model.FromDomain(gen)

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		return replaceChildren(tx, "genre_id", model.ID, model.Categories)
	})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByID returns the genre with its category links, nil when absent
func (g *GenreGateway) FindByID(ctx context.Context, id genre.ID) (*genre.Genre, error) {
	model, err := repository.FindOptional[GenreModel](ctx, g.db, id.String(), "Categories")
	if err != nil || model == nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes the genre and its links
func (g *GenreGateway) DeleteByID(ctx context.Context, id genre.ID) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id.String()).Delete(&GenreCategoryModel{}).Error; err != nil {
			return err
		}
		return repository.Delete[GenreModel](ctx, tx, id.String())
	})
}

// ExistsByIDs returns the subset of ids that are stored
func (g *GenreGateway) ExistsByIDs(ctx context.Context, ids []genre.ID) ([]genre.ID, error) {
	found, err := repository.ExistingIDs[GenreModel](ctx, g.db, identifier.Strings(ids))
	if err != nil {
		return nil, err
	}
	return identifier.From[genre.ID](found), nil
}

// replaceChildren deletes every row of T owned by ownerID and inserts rows.
func replaceChildren[T any](tx *gorm.DB, ownerColumn, ownerID string, rows []T) error {
	var zero T
	if err := tx.Where(ownerColumn+" = ?", ownerID).Delete(&zero).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
