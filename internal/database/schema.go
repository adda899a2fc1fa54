package database

import (
	"context"
	"fmt"
	"log/slog"

	"finance-tracker/internal/models"
)

// EnsureSchema creates the four tables when missing and seeds the default
// categories into an empty categories table. It is safe to call on every start.
func EnsureSchema(ctx context.Context, db *DB) error {
	runner, err := OpenMigrationRunner(db.config)
	if err != nil {
		return err
	}
	defer func() {
		if err := runner.Close(); err != nil {
			slog.Warn("failed to close migration connection", "error", err)
		}
	}()

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	return SeedCategories(ctx, db)
}

// SeedCategories inserts the default taxonomy only when no category exists.
func SeedCategories(ctx context.Context, db *DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}

	if count > 0 {
		slog.Debug("categories already seeded", "count", count)
		return nil
	}

	categories := models.DefaultCategories()
	if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	slog.Info("seeded default categories", "count", len(categories))
	return nil
}

// SchemaVersion reports the applied migration version and whether the last
// migration left the schema dirty.
func SchemaVersion(db *DB) (uint, bool, error) {
	runner, err := OpenMigrationRunner(db.config)
	if err != nil {
		return 0, false, err
	}
	defer runner.Close()

	return runner.GetMigrationStatus()
}
