package types

import (
	"math"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// RecipeQueryParams are the query string options of the recipe listing.
type RecipeQueryParams struct {
	PageNumber int    `form:"pageNumber"`
	PageSize   int    `form:"pageSize"`
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"`
}

// Normalize fills defaults and clamps the page size to MaxPageSize. The
// page number is capped so Offset cannot overflow.
func (p *RecipeQueryParams) Normalize() {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if maxPage := math.MaxInt / p.PageSize; p.PageNumber > maxPage {
		p.PageNumber = maxPage
	}
}

// Offset is the number of rows skipped before the requested page.
func (p RecipeQueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// CreateRecipeTagRequest references an existing tag by id or names a tag
// that is reused or created. A reference with neither is ignored.
type CreateRecipeTagRequest struct {
	TagID   *uuid.UUID `json:"tagId"`
	TagName *string    `json:"tagName" binding:"omitempty,max=100"`
}

type CreateRecipeRequest struct {
	Name         string                   `json:"name" binding:"required,max=100"`
	Description  string                   `json:"description" binding:"required,max=200"`
	Instructions string                   `json:"instructions" binding:"required"`
	Notes        string                   `json:"notes" binding:"required"`
	PrepTime     int                      `json:"prepTime" binding:"min=0"`
	CookTime     int                      `json:"cookTime" binding:"min=0"`
	Difficulty   int                      `json:"difficulty" binding:"min=1,max=5"`
	Tags         []CreateRecipeTagRequest `json:"tags" binding:"omitempty,dive"`
}

type UpdateRecipeRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description" binding:"required,max=200"`
	Instructions string `json:"instructions" binding:"required"`
	Notes        string `json:"notes" binding:"required"`
	PrepTime     int    `json:"prepTime" binding:"min=0"`
	CookTime     int    `json:"cookTime" binding:"min=0"`
	Difficulty   int    `json:"difficulty" binding:"min=1,max=5"`
}

type AddRecipeIngredientRequest struct {
	IngredientID        uuid.UUID `json:"ingredientId" binding:"required"`
	UnitOfMeasurementID uuid.UUID `json:"unitOfMeasurementId" binding:"required"`
	Quantity            int       `json:"quantity" binding:"gt=0"`
}

type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CreateUnitOfMeasurementRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
