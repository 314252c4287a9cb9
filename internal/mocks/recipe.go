package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context, params types.RecipeQueryParams) (*types.PagedResponse[types.RecipeResponse], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PagedResponse[types.RecipeResponse]), args.Error(1)
}

// GetRecipeDetail mocks the GetRecipeDetail method
func (m *MockRecipeService) GetRecipeDetail(ctx context.Context, id uuid.UUID) (*types.RecipeDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeDetailResponse), args.Error(1)
}

// CreateRecipe mocks the CreateRecipe method
func (m *MockRecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*types.RecipeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeResponse), args.Error(1)
}

// UpdateRecipe mocks the UpdateRecipe method
func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*types.RecipeResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeResponse), args.Error(1)
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AddIngredient mocks the AddIngredient method
func (m *MockRecipeService) AddIngredient(ctx context.Context, id uuid.UUID, req *types.AddRecipeIngredientRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

// AddTag mocks the AddTag method
func (m *MockRecipeService) AddTag(ctx context.Context, id, tagID uuid.UUID) error {
	args := m.Called(ctx, id, tagID)
	return args.Error(0)
}

// RecordTimeMade mocks the RecordTimeMade method
func (m *MockRecipeService) RecordTimeMade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
