package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

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
)

func setupDevAPI(t *testing.T, env config.Environment, seeder *mocks.MockSeeder) http.Handler {
	svc := api.Services{Seeder: seeder, Ping: func(context.Context) error { return nil }}
	router := testingutils.SetupTestRouter()
	api.RegisterRoutes(router, svc, env, logger.Discard())
	return router
}

func TestDevEndpointsForbiddenInProduction(t *testing.T) {
	seeder := new(mocks.MockSeeder)
	router := setupDevAPI(t, config.Production, seeder)

	w := testingutils.PerformRequest(router, http.MethodPost, "/api/dev/seed?clearExisting=true", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = testingutils.PerformRequest(router, http.MethodGet, "/api/dev/seed/status", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	seeder.AssertNotCalled(t, "Seed", mock.Anything, mock.Anything)
	seeder.AssertNotCalled(t, "Status", mock.Anything)
}

func TestDevSeed(t *testing.T) {
	seeder := new(mocks.MockSeeder)
	seeder.On("Seed", mock.Anything, true).Return(&types.SeedResult{
		Success:     true,
		ItemsSeeded: 10,
		Details:     map[string]int{"masterData": 4, "recipes": 5, "usageHistory": 1},
	}, nil)
	seeder.On("Seed", mock.Anything, false).Return(&types.SeedResult{
		Success:      false,
		ErrorMessage: service.SeedDataExistsMessage,
	}, nil)
	router := setupDevAPI(t, config.Development, seeder)

	w := testingutils.PerformRequest(router, http.MethodPost, "/api/dev/seed?clearExisting=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result types.SeedResult
	testingutils.DecodeJSON(t, w, &result)
	assert.True(t, result.Success)
	assert.Equal(t, 10, result.ItemsSeeded)

	w = testingutils.PerformRequest(router, http.MethodPost, "/api/dev/seed", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	testingutils.DecodeJSON(t, w, &result)
	assert.False(t, result.Success)
	assert.Equal(t, service.SeedDataExistsMessage, result.ErrorMessage)

	w = testingutils.PerformRequest(router, http.MethodPost, "/api/dev/seed?clearExisting=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	seeder.AssertExpectations(t)
}

func TestDevSeedFailure(t *testing.T) {
	seeder := new(mocks.MockSeeder)
	seeder.On("Seed", mock.Anything, false).Return(nil, errors.New("disk full"))
	router := setupDevAPI(t, config.Test, seeder)

	w := testingutils.PerformRequest(router, http.MethodPost, "/api/dev/seed", nil)
	testingutils.AssertResponse(t, w, http.StatusInternalServerError, map[string]interface{}{"error": "Internal Server Error"})
}

func TestDevSeedStatus(t *testing.T) {
	seeder := new(mocks.MockSeeder)
	seeder.On("Status", mock.Anything).Return(&types.DatabaseStatus{UnitsOfMeasurement: 20, Recipes: 3}, nil)
	router := setupDevAPI(t, config.Development, seeder)

	w := testingutils.PerformRequest(router, http.MethodGet, "/api/dev/seed/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status types.DatabaseStatus
	testingutils.DecodeJSON(t, w, &status)
	assert.Equal(t, int64(20), status.UnitsOfMeasurement)
	assert.Equal(t, int64(3), status.Recipes)
}

func TestDevSeedRefusedWhenTagsExist(t *testing.T) {
	router, db := setupAPI(t, config.Development)

	w := testingutils.PerformRequest(router, http.MethodPost, "/api/tags", map[string]string{"name": "Italian"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = testingutils.PerformRequest(router, http.MethodPost, "/api/dev/seed", nil)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	var result types.SeedResult
	testingutils.DecodeJSON(t, w, &result)
	assert.False(t, result.Success)
	assert.Equal(t, service.SeedDataExistsMessage, result.ErrorMessage)

	var tags int64
	require.NoError(t, db.Table("tags").Count(&tags).Error)
	assert.Equal(t, int64(1), tags)
}
