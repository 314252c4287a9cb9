package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, params types.RecipeQueryParams) (*types.PagedResponse[types.RecipeResponse], error)
	GetRecipeDetail(ctx context.Context, id uuid.UUID) (*types.RecipeDetailResponse, error)
	CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*types.RecipeResponse, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*types.RecipeResponse, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	AddIngredient(ctx context.Context, id uuid.UUID, req *types.AddRecipeIngredientRequest) error
	AddTag(ctx context.Context, id, tagID uuid.UUID) error
	RecordTimeMade(ctx context.Context, id uuid.UUID) error
}

// IIngredientService defines the interface for ingredient catalog operations
type IIngredientService interface {
	ListIngredients(ctx context.Context) ([]types.IngredientResponse, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*types.IngredientResponse, error)
	CreateIngredient(ctx context.Context, req *types.CreateIngredientRequest) (*types.IngredientResponse, error)
	DeleteIngredient(ctx context.Context, id uuid.UUID) error
}

// ITagService defines the interface for tag operations
type ITagService interface {
	ListTags(ctx context.Context) ([]types.TagResponse, error)
	GetTag(ctx context.Context, id uuid.UUID) (*types.TagResponse, error)
	CreateTag(ctx context.Context, req *types.CreateTagRequest) (*types.TagResponse, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
	SearchTags(ctx context.Context, query string, limit int) ([]types.TagResponse, error)
}

// IUnitService defines the interface for unit of measurement operations
type IUnitService interface {
	ListUnits(ctx context.Context) ([]types.UnitOfMeasurementResponse, error)
	GetUnit(ctx context.Context, id uuid.UUID) (*types.UnitOfMeasurementResponse, error)
	CreateUnit(ctx context.Context, req *types.CreateUnitOfMeasurementRequest) (*types.UnitOfMeasurementResponse, error)
	DeleteUnit(ctx context.Context, id uuid.UUID) error
}

// ISeeder defines the interface for the development data generator
type ISeeder interface {
	Seed(ctx context.Context, clearExisting bool) (*types.SeedResult, error)
	Status(ctx context.Context) (*types.DatabaseStatus, error)
}

// ObjectStore receives exported snapshots
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

var (
	_ IRecipeService     = (*RecipeService)(nil)
	_ IIngredientService = (*IngredientService)(nil)
	_ ITagService        = (*TagService)(nil)
	_ IUnitService       = (*UnitService)(nil)
	_ ISeeder            = (*Seeder)(nil)
)
