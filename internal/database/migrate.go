package database

import (
	"context"
	"embed"
	"fmt"

	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Tables lists every model in dependency order.
var Tables = []interface{}{
	&models.Recipe{},
	&models.Ingredient{},
	&models.Tag{},
	&models.UnitOfMeasurement{},
	&models.RecipeIngredient{},
	&models.RecipeTag{},
	&models.RecipeTimeMade{},
}

// RunMigrations brings the schema up to date. Postgres uses the embedded
// goose migrations; sqlite is auto-migrated and gets the unit catalog
// installed directly.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		if err := db.WithContext(ctx).AutoMigrate(Tables...); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
		return EnsureUnitCatalog(ctx, db)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// MigrationStatus logs the state of every embedded migration
func MigrationStatus(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	return goose.StatusContext(ctx, sqlDB, "migrations")
}

// EnsureUnitCatalog inserts any catalog unit missing by name
func EnsureUnitCatalog(ctx context.Context, db *gorm.DB) error {
	var existing []string
	if err := db.WithContext(ctx).Model(&models.UnitOfMeasurement{}).Pluck("name", &existing).Error; err != nil {
		return fmt.Errorf("failed to read units: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	var missing []models.UnitOfMeasurement
	for _, name := range models.UnitCatalog {
		if !have[name] {
			missing = append(missing, models.UnitOfMeasurement{Name: name})
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(&missing).Error; err != nil {
		return fmt.Errorf("failed to insert units: %w", err)
	}
	return nil
}
