package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/identifier"
	"github.com/narwhalmedia/catalog/pkg/repository"
)

// CategoryGateway implements category.Gateway
type CategoryGateway struct {
	db *gorm.DB
}

// NewCategoryGateway creates a new GORM category gateway
func NewCategoryGateway(db *gorm.DB) *CategoryGateway {
	return &CategoryGateway{db: db}
}

var _ category.Gateway = (*CategoryGateway)(nil)

// Create inserts the category
func (g *CategoryGateway) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	model := &CategoryModel{}
	model.FromDomain(c)
	if err := repository.Create(ctx, g.db, model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update overwrites the stored category
func (g *CategoryGateway) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	model := &CategoryModel{}
	model.FromDomain(c)
	if err := repository.Update(ctx, g.db, model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByID returns the category, nil when absent
func (g *CategoryGateway) FindByID(ctx context.Context, id category.ID) (*category.Category, error) {
	model, err := repository.FindOptional[CategoryModel](ctx, g.db, id.String())
	if err != nil || model == nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes the category
func (g *CategoryGateway) DeleteByID(ctx context.Context, id category.ID) error {
	return repository.Delete[CategoryModel](ctx, g.db, id.String())
}

// ExistsByIDs returns the subset of ids that are stored
func (g *CategoryGateway) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	found, err := repository.ExistingIDs[CategoryModel](ctx, g.db, identifier.Strings(ids))
	if err != nil {
		return nil, err
	}
	return identifier.From[category.ID](found), nil
}
