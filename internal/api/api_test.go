package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/api"
	"github.com/pageza/recipes/backend/internal/mocks"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/testingutils"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func servicesFor(db *gorm.DB) api.Services {
	log := logger.Discard()
	return api.Services{
		Recipes:     service.NewRecipeService(db, log),
		Ingredients: service.NewIngredientService(db, log),
		Tags:        service.NewTagService(db, log),
		Units:       service.NewUnitService(db, log),
		Seeder:      service.NewSeeder(db, log),
		Ping:        func(context.Context) error { return nil },
	}
}

func setupAPI(t *testing.T, env config.Environment) (*gin.Engine, *gorm.DB) {
	db := testingutils.SetupTestDB(t)
	router := testingutils.SetupTestRouter()
	api.RegisterRoutes(router, servicesFor(db), env, logger.Discard())
	return router, db
}

func recipeBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":         name,
		"description":  "Tasty",
		"instructions": "1. Cook.",
		"notes":        "None",
		"prepTime":     5,
		"cookTime":     10,
		"difficulty":   2,
	}
}

func TestCreateAndGetRecipe(t *testing.T) {
	router, db := setupAPI(t, config.Development)
	existing := testingutils.CreateTag(t, db, "Dinner")

	body := recipeBody("Tacos")
	body["tags"] = []map[string]interface{}{
		{"tagId": existing.ID.String()},
		{"tagName": "mexican"},
	}
	w := testingutils.PerformRequest(router, http.MethodPost, "/api/recipes", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created types.RecipeResponse
	testingutils.DecodeJSON(t, w, &created)
	assert.Equal(t, "Tacos", created.Name)
	assert.Equal(t, "/api/recipes/"+created.ID.String(), w.Header().Get("Location"))

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/recipes/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail map[string]interface{}
	testingutils.DecodeJSON(t, w, &detail)
	assert.Equal(t, "Tacos", detail["name"])
	assert.Equal(t, float64(0), detail["timesMadeCount"])
	assert.Len(t, detail["tags"], 2)
	assert.Equal(t, []interface{}{}, detail["ingredients"])
}

func TestCreateRecipeValidation(t *testing.T) {
	router, _ := setupAPI(t, config.Development)

	tests := []struct {
		name   string
		body   map[string]interface{}
		errors map[string]interface{}
	}{
		{
			name: "missing and out of range fields",
			body: map[string]interface{}{
				"description":  "x",
				"instructions": "y",
				"notes":        "z",
				"prepTime":     -1,
				"difficulty":   9,
			},
			errors: map[string]interface{}{
				"name":       "name is required",
				"prepTime":   "prepTime must be at least 0",
				"difficulty": "difficulty must be at most 5",
			},
		},
		{
			name: "too long strings",
			body: func() map[string]interface{} {
				b := recipeBody(strings.Repeat("n", 101))
				b["description"] = strings.Repeat("d", 201)
				return b
			}(),
			errors: map[string]interface{}{
				"name":        "name must not exceed 100 characters",
				"description": "description must not exceed 200 characters",
			},
		},
		{
			name: "nested tag name",
			body: func() map[string]interface{} {
				b := recipeBody("Fine")
				b["tags"] = []map[string]interface{}{{"tagName": strings.Repeat("t", 101)}}
				return b
			}(),
			errors: map[string]interface{}{
				"tags[0].tagName": "tags[0].tagName must not exceed 100 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testingutils.PerformRequest(router, http.MethodPost, "/api/recipes", tt.body)
			testingutils.AssertResponse(t, w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Validation failed",
				"errors": tt.errors,
			})
		})
	}
}

func TestMalformedRequests(t *testing.T) {
	router, _ := setupAPI(t, config.Development)

	w := testingutils.PerformRequest(router, http.MethodPost, "/api/recipes", `{"name": `)
	testingutils.AssertResponse(t, w, http.StatusBadRequest, map[string]interface{}{"error": "Invalid request body"})

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/recipes/not-a-uuid", nil)
	testingutils.AssertResponse(t, w, http.StatusBadRequest, map[string]interface{}{"error": "Invalid recipe ID"})

	w = testingutils.PerformRequest(router, http.MethodPost, "/api/recipes/"+uuid.NewString()+"/tags/nope", nil)
	testingutils.AssertResponse(t, w, http.StatusBadRequest, map[string]interface{}{"error": "Invalid tag ID"})

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/recipes?pageNumber=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipeNotFound(t *testing.T) {
	router, _ := setupAPI(t, config.Development)
	id := uuid.NewString()

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/recipes/" + id},
		{http.MethodDelete, "/api/recipes/" + id},
		{http.MethodPost, "/api/recipes/" + id + "/times-made"},
	} {
		w := testingutils.PerformRequest(router, req.method, req.path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", req.method, req.path)
	}

	w := testingutils.PerformRequest(router, http.MethodPut, "/api/recipes/"+id, recipeBody("Ghost"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecipeWithUnknownTagID(t *testing.T) {
	router, db := setupAPI(t, config.Development)

	body := recipeBody("Orphan")
	body["tags"] = []map[string]interface{}{{"tagId": uuid.NewString()}}
	w := testingutils.PerformRequest(router, http.MethodPost, "/api/recipes", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Table("recipes").Count(&count).Error)
	assert.Zero(t, count)
}

func TestListRecipesEndpoint(t *testing.T) {
	router, db := setupAPI(t, config.Development)
	for _, name := range []string{"B", "A", "C"} {
		testingutils.CreateRecipe(t, db, name, testBase)
	}

	w := testingutils.PerformRequest(router, http.MethodGet, "/api/recipes?pageSize=500&sortBy=name&sortOrder=desc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page types.PagedResponse[types.RecipeResponse]
	testingutils.DecodeJSON(t, w, &page)
	assert.Equal(t, 100, page.PageSize)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "C", page.Items[0].Name)
	assert.Equal(t, "A", page.Items[2].Name)
}

func TestRecipeLifecycle(t *testing.T) {
	router, db := setupAPI(t, config.Development)
	recipe := testingutils.CreateRecipe(t, db, "Omelette", testBase)
	eggs := testingutils.CreateIngredient(t, db, "eggs")
	whole := testingutils.FindUnit(t, db, "whole")
	tag := testingutils.CreateTag(t, db, "Breakfast")
	base := "/api/recipes/" + recipe.ID.String()

	line := map[string]interface{}{
		"ingredientId":        eggs.ID.String(),
		"unitOfMeasurementId": whole.ID.String(),
		"quantity":            3,
	}
	w := testingutils.PerformRequest(router, http.MethodPost, base+"/ingredients", line)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testingutils.PerformRequest(router, http.MethodPost, base+"/ingredients", line)
	assert.Equal(t, http.StatusConflict, w.Code)

	line["quantity"] = 0
	w = testingutils.PerformRequest(router, http.MethodPost, base+"/ingredients", line)
	testingutils.AssertResponse(t, w, http.StatusBadRequest, map[string]interface{}{
		"error":  "Validation failed",
		"errors": map[string]interface{}{"quantity": "quantity must be greater than 0"},
	})

	w = testingutils.PerformRequest(router, http.MethodPost, base+"/tags/"+tag.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = testingutils.PerformRequest(router, http.MethodPost, base+"/times-made", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	update := recipeBody("Cheese Omelette")
	w = testingutils.PerformRequest(router, http.MethodPut, base, update)
	require.Equal(t, http.StatusOK, w.Code)
	var updated types.RecipeResponse
	testingutils.DecodeJSON(t, w, &updated)
	assert.Equal(t, "Cheese Omelette", updated.Name)

	w = testingutils.PerformRequest(router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail types.RecipeDetailResponse
	testingutils.DecodeJSON(t, w, &detail)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, "eggs", detail.Ingredients[0].IngredientName)
	assert.Equal(t, "whole", detail.Ingredients[0].UnitOfMeasurementName)
	assert.Equal(t, int64(1), detail.TimesMadeCount)

	// Referenced catalog rows cannot be deleted
	w = testingutils.PerformRequest(router, http.MethodDelete, "/api/ingredients/"+eggs.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = testingutils.PerformRequest(router, http.MethodDelete, "/api/tags/"+tag.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = testingutils.PerformRequest(router, http.MethodDelete, "/api/unitsofmeasurement/"+whole.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testingutils.PerformRequest(router, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = testingutils.PerformRequest(router, http.MethodDelete, "/api/ingredients/"+eggs.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestInternalErrorsAreHidden(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	id := uuid.New()
	recipes.On("GetRecipeDetail", mock.Anything, id).Return(nil, errors.New("connection reset by peer"))

	db := testingutils.SetupTestDB(t)
	svc := servicesFor(db)
	svc.Recipes = recipes
	router := testingutils.SetupTestRouter()
	api.RegisterRoutes(router, svc, config.Development, logger.Discard())

	w := testingutils.PerformRequest(router, http.MethodGet, "/api/recipes/"+id.String(), nil)
	testingutils.AssertResponse(t, w, http.StatusInternalServerError, map[string]interface{}{"error": "Internal Server Error"})
	recipes.AssertExpectations(t)
}

func TestHealthCheck(t *testing.T) {
	db := testingutils.SetupTestDB(t)
	svc := servicesFor(db)
	router := testingutils.SetupTestRouter()
	api.RegisterRoutes(router, svc, config.Development, logger.Discard())

	for _, path := range []string{"/health", "/api/health"} {
		w := testingutils.PerformRequest(router, http.MethodGet, path, nil)
		testingutils.AssertResponse(t, w, http.StatusOK, map[string]interface{}{"status": "healthy", "database": "ok"})
	}

	svc.Ping = func(context.Context) error { return errors.New("down") }
	router = testingutils.SetupTestRouter()
	api.RegisterRoutes(router, svc, config.Development, logger.Discard())
	w := testingutils.PerformRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
