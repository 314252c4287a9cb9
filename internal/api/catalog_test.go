package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/testingutils"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestIngredientEndpoints(t *testing.T) {
	router, _ := setupAPI(t, config.Development)

	w := testingutils.PerformRequest(router, http.MethodPost, "/api/ingredients", map[string]string{"name": "basil"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created types.IngredientResponse
	testingutils.DecodeJSON(t, w, &created)
	assert.Equal(t, "/api/ingredients/"+created.ID.String(), w.Header().Get("Location"))

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/ingredients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []types.IngredientResponse
	testingutils.DecodeJSON(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "basil", list[0].Name)

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/ingredients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testingutils.PerformRequest(router, http.MethodPost, "/api/ingredients", map[string]string{"name": ""})
	testingutils.AssertResponse(t, w, http.StatusBadRequest, map[string]interface{}{
		"error":  "Validation failed",
		"errors": map[string]interface{}{"name": "name is required"},
	})

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/ingredients/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testingutils.PerformRequest(router, http.MethodDelete, "/api/ingredients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTagEndpoints(t *testing.T) {
	router, _ := setupAPI(t, config.Development)

	w := testingutils.PerformRequest(router, http.MethodPost, "/api/tags", map[string]string{"name": "Gluten-Free"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = testingutils.PerformRequest(router, http.MethodPost, "/api/tags", map[string]string{"name": "gluten-free"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/tags/search?query=GLUTEN", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found []types.TagResponse
	testingutils.DecodeJSON(t, w, &found)
	require.Len(t, found, 1)
	assert.Equal(t, "Gluten-Free", found[0].Name)

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/tags/search", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/tags/"+found[0].ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnitEndpoints(t *testing.T) {
	router, _ := setupAPI(t, config.Development)

	w := testingutils.PerformRequest(router, http.MethodGet, "/api/unitsofmeasurement", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var units []types.UnitOfMeasurementResponse
	testingutils.DecodeJSON(t, w, &units)
	assert.Len(t, units, 20)

	w = testingutils.PerformRequest(router, http.MethodPost, "/api/unitsofmeasurement", map[string]string{"name": "quart"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = testingutils.PerformRequest(router, http.MethodGet, "/api/unitsofmeasurement/bad", nil)
	testingutils.AssertResponse(t, w, http.StatusBadRequest, map[string]interface{}{"error": "Invalid unit of measurement ID"})
}
