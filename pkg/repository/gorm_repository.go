// Package repository holds generic gorm helpers shared by the persistence
// gateways. Entities are keyed by a string "id" column.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
)

// Create creates a new entity in the database.
func Create[T any](ctx context.Context, db *gorm.DB, entity *T) error {
	if err := db.WithContext(ctx).Create(entity).Error; err != nil {
		if pkgerrors.IsDuplicateError(err) {
			return pkgerrors.Conflict("entity already exists")
		}
		return err
	}
	return nil
}

// FindByID finds an entity by its ID. It preloads specified associations.
func FindByID[T any](ctx context.Context, db *gorm.DB, id string, preloads ...string) (*T, error) {
	var entity T
	query := db.WithContext(ctx)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	if err := query.First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("entity not found")
		}
		return nil, err
	}
	return &entity, nil
}

// FindOptional is FindByID with a nil result instead of a not found error.
func FindOptional[T any](ctx context.Context, db *gorm.DB, id string, preloads ...string) (*T, error) {
	entity, err := FindByID[T](ctx, db, id, preloads...)
	if pkgerrors.IsNotFound(err) {
		return nil, nil
	}
	return entity, err
}

// Update updates an entity in the database.
func Update[T any](ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Save(entity).Error
}

// Delete removes an entity from the database by its ID. Deleting a missing
// entity succeeds.
func Delete[T any](ctx context.Context, db *gorm.DB, id string) error {
	var entity T
	return db.WithContext(ctx).Delete(&entity, "id = ?", id).Error
}

// ExistingIDs returns the members of ids that have a row, using one IN
// query. An empty ids skips the query.
func ExistingIDs[T any](ctx context.Context, db *gorm.DB, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	var entity T
	found := make([]string, 0, len(ids))
	if err := db.WithContext(ctx).Model(&entity).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// List retrieves a page of entities with preloads.
func List[T any](ctx context.Context, db *gorm.DB, limit, offset int, preloads ...string) ([]*T, error) {
	var entities []*T
	query := db.WithContext(ctx)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	if err := query.Limit(limit).Offset(offset).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Count returns the total number of entities.
func Count[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	var entity T
	if err := db.WithContext(ctx).Model(&entity).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
