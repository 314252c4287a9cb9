package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
	"gorm.io/gorm"
)

// CatalogSnapshot is the exported document
type CatalogSnapshot struct {
	ExportedAt         time.Time                         `json:"exportedAt"`
	Recipes            []types.RecipeDetailResponse      `json:"recipes"`
	Ingredients        []types.IngredientResponse        `json:"ingredients"`
	Tags               []types.TagResponse               `json:"tags"`
	UnitsOfMeasurement []types.UnitOfMeasurementResponse `json:"unitsOfMeasurement"`
}

// ExportService writes JSON snapshots of the whole catalog to an ObjectStore
type ExportService struct {
	db          *gorm.DB
	store       ObjectStore
	log         *logger.Logger
	recipes     *RecipeService
	ingredients *IngredientService
	tags        *TagService
	units       *UnitService
}

func NewExportService(db *gorm.DB, store ObjectStore, log *logger.Logger) *ExportService {
	return &ExportService{
		db:          db,
		store:       store,
		log:         log.WithComponent("export_service"),
		recipes:     NewRecipeService(db, log),
		ingredients: NewIngredientService(db, log),
		tags:        NewTagService(db, log),
		units:       NewUnitService(db, log),
	}
}

// Snapshot collects every recipe detail, ordered by name, with the catalog
// tables
func (s *ExportService) Snapshot(ctx context.Context) (*CatalogSnapshot, error) {
	var ids []uuid.UUID
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Order("name ASC, id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipe ids: %w", err)
	}

	snapshot := &CatalogSnapshot{
		ExportedAt: time.Now().UTC(),
		Recipes:    make([]types.RecipeDetailResponse, 0, len(ids)),
	}
	for _, id := range ids {
		detail, err := s.recipes.GetRecipeDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		snapshot.Recipes = append(snapshot.Recipes, *detail)
	}

	var err error
	if snapshot.Ingredients, err = s.ingredients.ListIngredients(ctx); err != nil {
		return nil, err
	}
	if snapshot.Tags, err = s.tags.ListTags(ctx); err != nil {
		return nil, err
	}
	if snapshot.UnitsOfMeasurement, err = s.units.ListUnits(ctx); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Export uploads a snapshot under key and returns its size in bytes
func (s *ExportService) Export(ctx context.Context, key string) (int, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.store.Put(ctx, key, "application/json", body); err != nil {
		return 0, fmt.Errorf("failed to upload snapshot: %w", err)
	}
	s.log.Info("catalog exported", "key", key, "recipes", len(snapshot.Recipes), "bytes", len(body))
	return len(body), nil
}
