package testingutils

import (
	"testing"
	"time"

	"github.com/pageza/recipes/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateRecipe inserts a recipe with valid defaults; name and createdAt
// are taken from the arguments
func CreateRecipe(t *testing.T, db *gorm.DB, name string, createdAt time.Time) *models.Recipe {
	t.Helper()
	notes := "notes"
	recipe := &models.Recipe{
		Name:         name,
		Description:  name + " description",
		Instructions: "1. Cook it.",
		Notes:        &notes,
		PrepTime:     10,
		CookTime:     20,
		Difficulty:   2,
		CreatedAt:    createdAt.UTC(),
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

func CreateIngredient(t *testing.T, db *gorm.DB, name string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

func CreateTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// FindUnit returns a catalog unit by name
func FindUnit(t *testing.T, db *gorm.DB, name string) *models.UnitOfMeasurement {
	t.Helper()
	var unit models.UnitOfMeasurement
	require.NoError(t, db.Where("name = ?", name).First(&unit).Error)
	return &unit
}
