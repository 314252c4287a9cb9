package service_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/testingutils"
	"github.com/pageza/recipes/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeeder(t *testing.T) (*service.Seeder, *gorm.DB) {
	db := testingutils.SetupTestDB(t)
	seeder := service.NewSeeder(db, logger.Discard()).WithRand(rand.New(rand.NewPCG(1, 2)))
	return seeder, db
}

func TestSeedEmptyDatabase(t *testing.T) {
	seeder, db := newSeeder(t)
	ctx := context.Background()

	result, err := seeder.Seed(ctx, false)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Empty(t, result.ErrorMessage)

	status, err := seeder.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(models.UnitCatalog)), status.UnitsOfMeasurement)
	assert.Equal(t, int64(150), status.Ingredients)
	assert.Equal(t, int64(41), status.Tags)
	assert.Equal(t, int64(75), status.Recipes)
	assert.GreaterOrEqual(t, status.RecipeIngredients, int64(75*3))
	assert.LessOrEqual(t, status.RecipeIngredients, int64(75*10))
	assert.GreaterOrEqual(t, status.RecipeTags, int64(75*2))
	assert.LessOrEqual(t, status.RecipeTags, int64(75*5))
	assert.GreaterOrEqual(t, status.RecipeTimesMade, int64(75))
	assert.LessOrEqual(t, status.RecipeTimesMade, int64(75*30))

	assert.Equal(t, 150+41, result.Details["masterData"])
	assert.Equal(t, int(75+status.RecipeIngredients+status.RecipeTags), result.Details["recipes"])
	assert.Equal(t, int(status.RecipeTimesMade), result.Details["usageHistory"])
	assert.Equal(t, result.Details["masterData"]+result.Details["recipes"]+result.Details["usageHistory"], result.ItemsSeeded)

	var recipes []models.Recipe
	require.NoError(t, db.Find(&recipes).Error)
	for _, r := range recipes {
		assert.LessOrEqual(t, len([]rune(r.Name)), 100)
		assert.LessOrEqual(t, len([]rune(r.Description)), 200)
		assert.NotEmpty(t, r.Instructions)
		assert.GreaterOrEqual(t, r.Difficulty, 1)
		assert.LessOrEqual(t, r.Difficulty, 5)
	}

	var history []models.RecipeTimeMade
	require.NoError(t, db.Find(&history).Error)
	oldest := time.Now().UTC().AddDate(0, -12, 0).Add(-time.Minute)
	for _, entry := range history {
		assert.Zero(t, entry.MadeAt.Second())
		assert.True(t, entry.MadeAt.After(oldest), "made at %s", entry.MadeAt)
	}
}

func TestSeedRefusesWhenDataExists(t *testing.T) {
	seeder, db := newSeeder(t)
	ctx := context.Background()
	existing := testingutils.CreateIngredient(t, db, "saffron")

	result, err := seeder.Seed(ctx, false)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, service.SeedDataExistsMessage, result.ErrorMessage)
	assert.Zero(t, result.ItemsSeeded)

	status, err := seeder.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.Ingredients)
	assert.Zero(t, status.Recipes)
	assert.Zero(t, status.Tags)

	var still models.Ingredient
	require.NoError(t, db.First(&still, "id = ?", existing.ID).Error)
}

func TestSeedClearExistingReplacesData(t *testing.T) {
	seeder, db := newSeeder(t)
	ctx := context.Background()
	old := testingutils.CreateRecipe(t, db, "Old Recipe", baseTime)
	testingutils.CreateTag(t, db, "Old Tag")

	_, err := seeder.Seed(ctx, false)
	require.NoError(t, err)

	result, err := seeder.Seed(ctx, true)
	require.NoError(t, err)
	require.True(t, result.Success)

	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Where("id = ?", old.ID).Count(&count).Error)
	assert.Zero(t, count)

	status, err := seeder.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(75), status.Recipes)
	assert.Equal(t, int64(150), status.Ingredients)
	assert.Equal(t, int64(41), status.Tags)
	assert.Equal(t, int64(len(models.UnitCatalog)), status.UnitsOfMeasurement)
}

func TestSeedRefusesWhenOnlyTagsExist(t *testing.T) {
	seeder, db := newSeeder(t)
	ctx := context.Background()
	testingutils.CreateTag(t, db, "italian")

	result, err := seeder.Seed(ctx, false)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, service.SeedDataExistsMessage, result.ErrorMessage)

	status, err := seeder.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.Tags)
	assert.Zero(t, status.Ingredients)
	assert.Zero(t, status.Recipes)

	result, err = seeder.Seed(ctx, true)
	require.NoError(t, err)
	assert.True(t, result.Success)
}
