package gorm

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/pkg/database"
)

// Migrations returns the catalog schema migrations in order.
func Migrations() []database.MigrationEntry {
	return []database.MigrationEntry{
		{
			Version: "20240101_001",
			Name:    "Create catalog schema",
			Up:      migration001CreateSchema,
		},
		{
			Version: "20240101_002",
			Name:    "Add listing indexes",
			Up:      migration002AddIndexes,
		},
	}
}

// AutoMigrate creates or updates every catalog table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

func migration001CreateSchema(tx *gorm.DB) error {
	if err := AutoMigrate(tx); err != nil {
		return fmt.Errorf("failed to migrate catalog models: %w", err)
	}
	return nil
}

func migration002AddIndexes(tx *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_categories_name ON categories(name)",
		"CREATE INDEX IF NOT EXISTS idx_genres_name ON genres(name)",
		"CREATE INDEX IF NOT EXISTS idx_cast_members_name ON cast_members(name)",
		"CREATE INDEX IF NOT EXISTS idx_videos_title ON videos(title)",
		"CREATE INDEX IF NOT EXISTS idx_videos_created_at ON videos(created_at)",
	}

	for _, index := range indexes {
		if err := tx.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
