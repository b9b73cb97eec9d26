package gorm

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/database"
)

// NewTestDB creates a migrated SQLite database in a temporary directory
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.GetDefaults().Database
	cfg.Driver = config.DriverSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "catalog_test.db")

	logger := zaptest.NewLogger(t)
	db, cleanup, err := database.Open(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	require.NoError(t, database.NewMigrator(db, Migrations(), logger).Migrate())
	return db
}
