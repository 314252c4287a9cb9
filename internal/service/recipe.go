package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultRecipeOrder applies when sortBy is empty or unknown
const defaultRecipeOrder = "created_at DESC"

var recipeSortColumns = map[string]string{
	"name":       "name",
	"createdat":  "created_at",
	"preptime":   "prep_time",
	"cooktime":   "cook_time",
	"difficulty": "difficulty",
}

// RecipeService handles recipe operations
type RecipeService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, log *logger.Logger) *RecipeService {
	return &RecipeService{
		db:  db,
		log: log.WithComponent("recipe_service"),
	}
}

// recipeOrder builds the ORDER BY clause. The id tiebreaker keeps pages
// stable when the sort column has duplicates.
func recipeOrder(sortBy, sortOrder string) string {
	column, ok := recipeSortColumns[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		return defaultRecipeOrder + ", id ASC"
	}
	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(sortOrder), "desc") {
		direction = "DESC"
	}
	return column + " " + direction + ", id ASC"
}

// ListRecipes returns one sorted page of recipes
func (s *RecipeService) ListRecipes(ctx context.Context, params types.RecipeQueryParams) (*types.PagedResponse[types.RecipeResponse], error) {
	params.Normalize()
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Recipe{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}

	var recipes []models.Recipe
	err := db.Order(recipeOrder(params.SortBy, params.SortOrder)).
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	items := make([]types.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		items = append(items, types.NewRecipeResponse(&recipes[i]))
	}
	page := types.NewPagedResponse(items, total, params.PageNumber, params.PageSize)
	return &page, nil
}

// GetRecipeDetail loads a recipe with its ingredient lines, tags and the
// number of times it was made
func (s *RecipeService) GetRecipeDetail(ctx context.Context, id uuid.UUID) (*types.RecipeDetailResponse, error) {
	db := s.db.WithContext(ctx)

	recipe, err := findRecipe(db, id)
	if err != nil {
		return nil, err
	}

	var lines []models.RecipeIngredient
	err = db.Preload("Ingredient").
		Preload("UnitOfMeasurement").
		Where("recipe_id = ?", id).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}

	var tags []models.Tag
	err = db.Model(&models.Tag{}).
		Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
		Where("recipe_tags.recipe_id = ?", id).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	var timesMade int64
	if err := db.Model(&models.RecipeTimeMade{}).Where("recipe_id = ?", id).Count(&timesMade).Error; err != nil {
		return nil, fmt.Errorf("failed to count times made: %w", err)
	}

	detail := &types.RecipeDetailResponse{
		RecipeResponse: types.NewRecipeResponse(recipe),
		Ingredients:    make([]types.RecipeIngredientDetail, 0, len(lines)),
		Tags:           make([]types.TagResponse, 0, len(tags)),
		TimesMadeCount: timesMade,
	}
	for _, line := range lines {
		item := types.RecipeIngredientDetail{
			IngredientID:        line.IngredientID,
			UnitOfMeasurementID: line.UnitOfMeasurementID,
			Quantity:            line.Quantity,
		}
		if line.Ingredient != nil {
			item.IngredientName = line.Ingredient.Name
		}
		if line.UnitOfMeasurement != nil {
			item.UnitOfMeasurementName = line.UnitOfMeasurement.Name
		}
		detail.Ingredients = append(detail.Ingredients, item)
	}
	for i := range tags {
		detail.Tags = append(detail.Tags, types.NewTagResponse(&tags[i]))
	}
	return detail, nil
}

// CreateRecipe inserts a recipe and links its tags in one transaction.
// An unknown tag id rolls everything back.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*types.RecipeResponse, error) {
	notes := req.Notes
	recipe := &models.Recipe{
		Name:         req.Name,
		Description:  req.Description,
		Instructions: req.Instructions,
		Notes:        &notes,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Difficulty:   req.Difficulty,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}

		linked := make(map[uuid.UUID]bool)
		for _, ref := range req.Tags {
			tag, err := resolveTag(tx, ref)
			if err != nil {
				return err
			}
			if tag == nil || linked[tag.ID] {
				continue
			}
			if err := tx.Create(&models.RecipeTag{RecipeID: recipe.ID, TagID: tag.ID}).Error; err != nil {
				return fmt.Errorf("failed to link tag %s: %w", tag.ID, err)
			}
			linked[tag.ID] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("recipe created", "recipe_id", recipe.ID, "tags", len(req.Tags))
	resp := types.NewRecipeResponse(recipe)
	return &resp, nil
}

// resolveTag turns a tag reference into a tag row. A reference without id
// or name resolves to nil.
func resolveTag(tx *gorm.DB, ref types.CreateRecipeTagRequest) (*models.Tag, error) {
	if ref.TagID != nil && *ref.TagID != uuid.Nil {
		var tag models.Tag
		if err := tx.First(&tag, "id = ?", *ref.TagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: tag with id %s does not exist", ErrTagNotFound, *ref.TagID)
			}
			return nil, fmt.Errorf("failed to load tag: %w", err)
		}
		return &tag, nil
	}

	if ref.TagName == nil || strings.TrimSpace(*ref.TagName) == "" {
		return nil, nil
	}
	return findOrCreateTag(tx, *ref.TagName)
}

// findOrCreateTag reuses a tag whose name matches ignoring case
func findOrCreateTag(tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	err := tx.Where("normalized_name = ?", models.NormalizeTagName(name)).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up tag: %w", err)
	}

	tag = models.Tag{Name: name}
	if err := tx.Create(&tag).Error; err != nil {
		// Another request created the same tag after the lookup
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: tag %q", ErrConflict, strings.TrimSpace(name))
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return &tag, nil
}

// UpdateRecipe overwrites the simple fields of a recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*types.RecipeResponse, error) {
	db := s.db.WithContext(ctx)

	recipe, err := findRecipe(db, id)
	if err != nil {
		return nil, err
	}

	notes := req.Notes
	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.Instructions = req.Instructions
	recipe.Notes = &notes
	recipe.PrepTime = req.PrepTime
	recipe.CookTime = req.CookTime
	recipe.Difficulty = req.Difficulty

	if err := db.Save(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	resp := types.NewRecipeResponse(recipe)
	return &resp, nil
}

// DeleteRecipe deletes a recipe. Its ingredient lines, tag links and
// usage history go with it; the catalog rows they point at stay.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("recipe", id)
	}
	s.log.Info("recipe deleted", "recipe_id", id)
	return nil
}

// AddIngredient adds an ingredient line to a recipe
func (s *RecipeService) AddIngredient(ctx context.Context, id uuid.UUID, req *types.AddRecipeIngredientRequest) error {
	db := s.db.WithContext(ctx)

	if _, err := findRecipe(db, id); err != nil {
		return err
	}
	if err := mustExist(db, &models.Ingredient{}, "ingredient", req.IngredientID); err != nil {
		return err
	}
	if err := mustExist(db, &models.UnitOfMeasurement{}, "unit of measurement", req.UnitOfMeasurementID); err != nil {
		return err
	}

	var existing int64
	err := db.Model(&models.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ? AND unit_of_measurement_id = ?", id, req.IngredientID, req.UnitOfMeasurementID).
		Count(&existing).Error
	if err != nil {
		return fmt.Errorf("failed to check ingredient line: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("%w: recipe already has this ingredient in this unit", ErrConflict)
	}

	line := &models.RecipeIngredient{
		RecipeID:            id,
		IngredientID:        req.IngredientID,
		UnitOfMeasurementID: req.UnitOfMeasurementID,
		Quantity:            req.Quantity,
	}
	if err := db.Create(line).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: recipe already has this ingredient in this unit", ErrConflict)
		}
		return fmt.Errorf("failed to add ingredient: %w", err)
	}
	return nil
}

// AddTag links an existing tag to a recipe. Linking twice is a no-op.
func (s *RecipeService) AddTag(ctx context.Context, id, tagID uuid.UUID) error {
	db := s.db.WithContext(ctx)

	if _, err := findRecipe(db, id); err != nil {
		return err
	}
	if err := mustExist(db, &models.Tag{}, "tag", tagID); err != nil {
		return err
	}

	link := &models.RecipeTag{RecipeID: id, TagID: tagID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error; err != nil {
		return fmt.Errorf("failed to add tag: %w", err)
	}
	return nil
}

// RecordTimeMade appends a usage entry stamped with the current UTC time
func (s *RecipeService) RecordTimeMade(ctx context.Context, id uuid.UUID) error {
	db := s.db.WithContext(ctx)

	if _, err := findRecipe(db, id); err != nil {
		return err
	}
	entry := &models.RecipeTimeMade{RecipeID: id, MadeAt: time.Now().UTC()}
	if err := db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record time made: %w", err)
	}
	return nil
}

func findRecipe(db *gorm.DB, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("recipe", id)
		}
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return &recipe, nil
}

// mustExist returns a NotFoundError unless a row of model's table has id
func mustExist(db *gorm.DB, model interface{}, entity string, id uuid.UUID) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up %s: %w", entity, err)
	}
	if count == 0 {
		return notFound(entity, id)
	}
	return nil
}
