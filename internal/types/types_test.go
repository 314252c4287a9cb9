package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeQueryParamsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       RecipeQueryParams
		wantPage int
		wantSize int
	}{
		{"defaults", RecipeQueryParams{}, 1, DefaultPageSize},
		{"clamps page size", RecipeQueryParams{PageNumber: 2, PageSize: 500}, 2, MaxPageSize},
		{"exact max kept", RecipeQueryParams{PageNumber: 1, PageSize: 100}, 1, 100},
		{"negative page", RecipeQueryParams{PageNumber: -3, PageSize: 10}, 1, 10},
		{"huge page capped", RecipeQueryParams{PageNumber: math.MaxInt, PageSize: 100}, math.MaxInt / 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.PageNumber)
			assert.Equal(t, tt.wantSize, p.PageSize)
		})
	}
}

func TestRecipeQueryParamsOffset(t *testing.T) {
	p := RecipeQueryParams{PageNumber: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestRecipeQueryParamsOffsetDoesNotOverflow(t *testing.T) {
	p := RecipeQueryParams{PageNumber: math.MaxInt/100 + 2, PageSize: 100}
	p.Normalize()
	assert.Positive(t, p.Offset())
	assert.Equal(t, (p.PageNumber-1)*p.PageSize, p.Offset())
}

func TestNewPagedResponse(t *testing.T) {
	page := NewPagedResponse([]int{1, 2, 3}, 45, 2, 20)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(45), page.TotalCount)

	empty := NewPagedResponse[int](nil, 0, 1, 50)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}
