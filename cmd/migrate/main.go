package main

import (
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"
	"gorm.io/gorm"

	gormstore "github.com/narwhalmedia/catalog/internal/infrastructure/persistence/gorm"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/database"
)

func main() {
	var (
		status = flag.Bool("status", false, "Show migration status")
		dryRun = flag.Bool("dry-run", false, "Show pending migrations without applying them")
	)
	flag.Parse()

	cfg := config.MustLoadServiceConfig("catalog", config.GetDefaults())

	zl, err := cfg.Logger.ToLoggerConfig().Build()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	logger := zl.Zap()
	defer func() { _ = logger.Sync() }()

	// Connect to database
	db, cleanup, err := database.Open(cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer cleanup()

	migrator := database.NewMigrator(db, gormstore.Migrations(), logger)

	// Handle different commands
	switch {
	case *status:
		showMigrationStatus(db, migrator)
	case *dryRun:
		showPendingMigrations(migrator)
	default:
		runMigrations(migrator, logger)
	}
}

// runMigrations applies all pending migrations
func runMigrations(migrator *database.Migrator, logger *zap.Logger) {
	fmt.Println("Running database migrations...")

	if err := migrator.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	fmt.Println("Migrations completed successfully!")
}

// showMigrationStatus displays the current migration status
func showMigrationStatus(db *gorm.DB, migrator *database.Migrator) {
	var applied []database.Migration
	if db.Migrator().HasTable(&database.Migration{}) {
		if err := db.Order("applied_at DESC").Find(&applied).Error; err != nil {
			log.Fatalf("Failed to get migrations: %v", err)
		}
	}

	if len(applied) == 0 {
		fmt.Println("No migrations have been applied yet.")
	} else {
		fmt.Println("Applied migrations:")
		fmt.Println("==================")
		for _, m := range applied {
			fmt.Printf("%s | %s | Applied at: %s\n", m.Version, m.Name, m.AppliedAt.Format("2006-01-02 15:04:05"))
		}
	}

	pending, err := migrator.GetPendingMigrations()
	if err != nil {
		log.Fatalf("Failed to get pending migrations: %v", err)
	}

	if len(pending) > 0 {
		fmt.Println("\nPending migrations:")
		fmt.Println("==================")
		for _, m := range pending {
			fmt.Printf("%s | %s\n", m.Version, m.Name)
		}
	} else {
		fmt.Println("\nAll migrations are up to date!")
	}
}

// showPendingMigrations displays migrations that would be applied
func showPendingMigrations(migrator *database.Migrator) {
	pending, err := migrator.GetPendingMigrations()
	if err != nil {
		log.Fatalf("Failed to get pending migrations: %v", err)
	}

	if len(pending) == 0 {
		fmt.Println("No pending migrations.")
		return
	}

	fmt.Println("Pending migrations that would be applied:")
	fmt.Println("========================================")
	for _, m := range pending {
		fmt.Printf("%s | %s\n", m.Version, m.Name)
	}
}
