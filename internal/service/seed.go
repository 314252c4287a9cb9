package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
	"gorm.io/gorm"
)

const (
	seedIngredientCount = 150
	seedRecipeCount     = 75
	seedBatchSize       = 100
)

// SeedDataExistsMessage explains a refused reseed
const SeedDataExistsMessage = "Database already contains data. Use clearExisting=true to re-seed."

// Seeder fills the database with generated development data
type Seeder struct {
	db  *gorm.DB
	log *logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeder creates a Seeder with a time seeded random source
func NewSeeder(db *gorm.DB, log *logger.Logger) *Seeder {
	now := uint64(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		log: log.WithComponent("seeder"),
		rng: rand.New(rand.NewPCG(now, now>>1)),
	}
}

// WithRand replaces the random source, for reproducible runs
func (s *Seeder) WithRand(rng *rand.Rand) *Seeder {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rng
	return s
}

// Seed generates master data, recipes and usage history in one transaction.
// Unless clearExisting is set it refuses to run when recipes, ingredients or
// tags exist. Units of measurement are never cleared.
func (s *Seeder) Seed(ctx context.Context, clearExisting bool) (*types.SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.db.WithContext(ctx)
	s.log.Info("starting database seeding", "clear_existing", clearExisting)

	if !clearExisting {
		hasData, err := hasSeedData(db)
		if err != nil {
			return nil, err
		}
		if hasData {
			s.log.Warn("database already contains data, skipping seed")
			return &types.SeedResult{Success: false, ErrorMessage: SeedDataExistsMessage}, nil
		}
	}

	var masterData, recipeRows, history int
	err := db.Transaction(func(tx *gorm.DB) error {
		if clearExisting {
			if err := clearSeedData(tx); err != nil {
				return err
			}
			s.log.Info("cleared existing development data")
		}

		ingredients, tags, err := s.seedMasterData(tx)
		if err != nil {
			return err
		}
		masterData = len(ingredients) + len(tags)

		recipes, rows, err := s.seedRecipes(tx, ingredients, tags)
		if err != nil {
			return err
		}
		recipeRows = rows

		history, err = s.seedUsageHistory(tx, recipes)
		return err
	})
	if err != nil {
		s.log.Error("database seeding failed", "error", err)
		return nil, err
	}

	total := masterData + recipeRows + history
	s.log.Info("database seeding completed", "items", total)
	return &types.SeedResult{
		Success:     true,
		ItemsSeeded: total,
		Details: map[string]int{
			"masterData":   masterData,
			"recipes":      recipeRows,
			"usageHistory": history,
		},
	}, nil
}

// hasSeedData reports whether any table the seeder fills already has rows.
// Tags count too: seeded tag names would collide with existing ones.
func hasSeedData(db *gorm.DB) (bool, error) {
	for _, model := range []interface{}{&models.Recipe{}, &models.Ingredient{}, &models.Tag{}} {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to count %T: %w", model, err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// clearSeedData empties every table except units, children first
func clearSeedData(tx *gorm.DB) error {
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{
		&models.RecipeTimeMade{},
		&models.RecipeTag{},
		&models.RecipeIngredient{},
		&models.Recipe{},
		&models.Tag{},
		&models.Ingredient{},
	} {
		if err := all.Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

func (s *Seeder) seedMasterData(tx *gorm.DB) ([]models.Ingredient, []models.Tag, error) {
	names := s.ingredientNames(seedIngredientCount)
	ingredients := make([]models.Ingredient, 0, len(names))
	for _, name := range names {
		ingredients = append(ingredients, models.Ingredient{Name: name})
	}
	if err := tx.CreateInBatches(&ingredients, seedBatchSize).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to seed ingredients: %w", err)
	}

	tags := make([]models.Tag, 0, len(seedTagNames))
	for _, name := range seedTagNames {
		tags = append(tags, models.Tag{Name: name})
	}
	if err := tx.CreateInBatches(&tags, seedBatchSize).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to seed tags: %w", err)
	}
	return ingredients, tags, nil
}

// ingredientNames takes the category lists in order and tops them up with
// qualified variants until count distinct names exist
func (s *Seeder) ingredientNames(count int) []string {
	names := make([]string, 0, count)
	seen := make(map[string]bool, count)
	var base []string
	for _, category := range ingredientCategories {
		base = append(base, category...)
	}
	for _, name := range base {
		if len(names) == count {
			return names
		}
		names = append(names, name)
		seen[name] = true
	}
	for len(names) < count {
		name := pick(s.rng, ingredientQualifiers) + " " + pick(s.rng, base)
		if !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	return names
}

// seedRecipes returns the recipes and the number of rows written for
// recipes, ingredient lines and tag links together
func (s *Seeder) seedRecipes(tx *gorm.DB, ingredients []models.Ingredient, tags []models.Tag) ([]models.Recipe, int, error) {
	var units []models.UnitOfMeasurement
	if err := tx.Find(&units).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load units: %w", err)
	}
	if len(units) == 0 || len(ingredients) == 0 || len(tags) == 0 {
		s.log.Warn("cannot seed recipes: master data is missing")
		return nil, 0, nil
	}

	recipes := make([]models.Recipe, 0, seedRecipeCount)
	for range seedRecipeCount {
		recipes = append(recipes, s.generateRecipe())
	}
	if err := tx.CreateInBatches(&recipes, seedBatchSize).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to seed recipes: %w", err)
	}

	var lines []models.RecipeIngredient
	var links []models.RecipeTag
	for _, recipe := range recipes {
		for _, i := range s.rng.Perm(len(ingredients))[:between(s.rng, 3, min(10, len(ingredients)))] {
			lines = append(lines, models.RecipeIngredient{
				RecipeID:            recipe.ID,
				IngredientID:        ingredients[i].ID,
				UnitOfMeasurementID: units[s.rng.IntN(len(units))].ID,
				Quantity:            between(s.rng, 1, 10),
			})
		}
		for _, i := range s.rng.Perm(len(tags))[:between(s.rng, 2, min(5, len(tags)))] {
			links = append(links, models.RecipeTag{RecipeID: recipe.ID, TagID: tags[i].ID})
		}
	}
	if err := tx.CreateInBatches(&lines, seedBatchSize).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to seed recipe ingredients: %w", err)
	}
	if err := tx.CreateInBatches(&links, seedBatchSize).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to seed recipe tags: %w", err)
	}
	return recipes, len(recipes) + len(lines) + len(links), nil
}

func (s *Seeder) generateRecipe() models.Recipe {
	name := pick(s.rng, proteins) + " " + pick(s.rng, dishTypes)
	if s.rng.Float64() < 0.6 {
		name = pick(s.rng, flavors) + " " + name
	}

	description := fmt.Sprintf(pick(s.rng, descriptionTemplates), strings.ToLower(name), s.sentence(between(s.rng, 7, 10)))

	steps := make([]string, between(s.rng, 4, 8))
	for i := range steps {
		steps[i] = fmt.Sprintf("%d. %s", i+1, s.sentence(12))
	}

	notes := s.paragraph(2)
	return models.Recipe{
		Name:         name,
		Description:  truncateRunes(description, 200),
		Instructions: strings.Join(steps, "\n"),
		Notes:        &notes,
		PrepTime:     between(s.rng, 5, 60),
		CookTime:     between(s.rng, 10, 120),
		Difficulty:   between(s.rng, 1, 5),
	}
}

// seedUsageHistory gives each recipe 1-5 (70%), 6-15 (20%) or 16-30 (10%)
// distinct minute precision timestamps from the last twelve months
func (s *Seeder) seedUsageHistory(tx *gorm.DB, recipes []models.Recipe) (int, error) {
	if len(recipes) == 0 {
		s.log.Warn("cannot seed usage history: no recipes")
		return 0, nil
	}

	end := time.Now().UTC()
	start := end.AddDate(0, -12, 0)
	span := int64(end.Sub(start))

	var entries []models.RecipeTimeMade
	for _, recipe := range recipes {
		n := s.timesMade()
		seen := make(map[time.Time]bool, n)
		for len(seen) < n {
			madeAt := start.Add(time.Duration(s.rng.Int64N(span))).Truncate(time.Minute)
			if seen[madeAt] {
				continue
			}
			seen[madeAt] = true
			entries = append(entries, models.RecipeTimeMade{RecipeID: recipe.ID, MadeAt: madeAt})
		}
	}
	if err := tx.CreateInBatches(&entries, seedBatchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to seed usage history: %w", err)
	}
	return len(entries), nil
}

func (s *Seeder) timesMade() int {
	roll := s.rng.Float64()
	switch {
	case roll < 0.70:
		return between(s.rng, 1, 5)
	case roll < 0.90:
		return between(s.rng, 6, 15)
	default:
		return between(s.rng, 16, 30)
	}
}

func (s *Seeder) sentence(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = pick(s.rng, loremWords)
	}
	text := strings.Join(parts, " ")
	return strings.ToUpper(text[:1]) + text[1:] + "."
}

func (s *Seeder) paragraph(minSentences int) string {
	count := minSentences + s.rng.IntN(3)
	sentences := make([]string, count)
	for i := range sentences {
		sentences[i] = s.sentence(between(s.rng, 4, 10))
	}
	return strings.Join(sentences, " ")
}

// Status returns the row count of every table
func (s *Seeder) Status(ctx context.Context) (*types.DatabaseStatus, error) {
	db := s.db.WithContext(ctx)
	status := &types.DatabaseStatus{}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.UnitOfMeasurement{}, &status.UnitsOfMeasurement},
		{&models.Ingredient{}, &status.Ingredients},
		{&models.Tag{}, &status.Tags},
		{&models.Recipe{}, &status.Recipes},
		{&models.RecipeIngredient{}, &status.RecipeIngredients},
		{&models.RecipeTag{}, &status.RecipeTags},
		{&models.RecipeTimeMade{}, &status.RecipeTimesMade},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %T: %w", c.model, err)
		}
	}
	return status, nil
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

// between returns a value in [lo, hi]
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
