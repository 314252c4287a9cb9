package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/internal/models"
)

// PagedResponse is one page of a sorted listing.
type PagedResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

func NewPagedResponse[T any](items []T, total int64, pageNumber, pageSize int) PagedResponse[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PagedResponse[T]{
		Items:      items,
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

type RecipeResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Instructions string    `json:"instructions"`
	Notes        *string   `json:"notes"`
	PrepTime     int       `json:"prepTime"`
	CookTime     int       `json:"cookTime"`
	Difficulty   int       `json:"difficulty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Instructions: r.Instructions,
		Notes:        r.Notes,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Difficulty:   r.Difficulty,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type RecipeIngredientDetail struct {
	IngredientID          uuid.UUID `json:"ingredientId"`
	IngredientName        string    `json:"ingredientName"`
	UnitOfMeasurementID   uuid.UUID `json:"unitOfMeasurementId"`
	UnitOfMeasurementName string    `json:"unitOfMeasurementName"`
	Quantity              int       `json:"quantity"`
}

type RecipeDetailResponse struct {
	RecipeResponse
	Ingredients    []RecipeIngredientDetail `json:"ingredients"`
	Tags           []TagResponse            `json:"tags"`
	TimesMadeCount int64                    `json:"timesMadeCount"`
}

type IngredientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewIngredientResponse(i *models.Ingredient) IngredientResponse {
	return IngredientResponse{ID: i.ID, Name: i.Name, CreatedAt: i.CreatedAt, UpdatedAt: i.UpdatedAt}
}

type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewTagResponse(t *models.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

type UnitOfMeasurementResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUnitOfMeasurementResponse(u *models.UnitOfMeasurement) UnitOfMeasurementResponse {
	return UnitOfMeasurementResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}
