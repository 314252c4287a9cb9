package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
	"gorm.io/gorm"
)

// IngredientService handles the ingredient catalog
type IngredientService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB, log *logger.Logger) *IngredientService {
	return &IngredientService{
		db:  db,
		log: log.WithComponent("ingredient_service"),
	}
}

// ListIngredients returns every ingredient ordered by name
func (s *IngredientService) ListIngredients(ctx context.Context) ([]types.IngredientResponse, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Order("name ASC, id ASC").Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	result := make([]types.IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		result = append(result, types.NewIngredientResponse(&ingredients[i]))
	}
	return result, nil
}

// GetIngredient retrieves an ingredient by ID
func (s *IngredientService) GetIngredient(ctx context.Context, id uuid.UUID) (*types.IngredientResponse, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("ingredient", id)
		}
		return nil, fmt.Errorf("failed to load ingredient: %w", err)
	}
	resp := types.NewIngredientResponse(&ingredient)
	return &resp, nil
}

// CreateIngredient creates a new ingredient
func (s *IngredientService) CreateIngredient(ctx context.Context, req *types.CreateIngredientRequest) (*types.IngredientResponse, error) {
	ingredient := &models.Ingredient{Name: req.Name}
	if err := s.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}
	resp := types.NewIngredientResponse(ingredient)
	return &resp, nil
}

// DeleteIngredient deletes an ingredient no recipe uses
func (s *IngredientService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	return deleteCatalogRow(ctx, s.db, &models.Ingredient{}, "ingredient", id,
		&models.RecipeIngredient{}, "ingredient_id")
}

// deleteCatalogRow deletes one row of a catalog table unless the referencing
// junction table still points at it. The foreign key check backs up the
// count for rows linked concurrently.
func deleteCatalogRow(ctx context.Context, db *gorm.DB, model interface{}, entity string, id uuid.UUID, ref interface{}, refColumn string) error {
	db = db.WithContext(ctx)

	var refs int64
	if err := db.Model(ref).Where(refColumn+" = ?", id).Count(&refs).Error; err != nil {
		return fmt.Errorf("failed to check %s references: %w", entity, err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: %s %s is used by %d recipe(s)", ErrInUse, entity, id, refs)
	}

	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return fmt.Errorf("%w: %s %s is used by a recipe", ErrInUse, entity, id)
		}
		return fmt.Errorf("failed to delete %s: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(entity, id)
	}
	return nil
}
