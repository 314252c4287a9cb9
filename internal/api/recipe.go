package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	log           *logger.Logger
}

func NewRecipeHandler(recipeService service.IRecipeService, log *logger.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		log:           log.WithComponent("recipe_handler"),
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/ingredients", h.AddIngredient)
		recipes.POST("/:id/tags/:tagId", h.AddTag)
		recipes.POST("/:id/times-made", h.RecordTimeMade)
	}
}

// ListRecipes returns one page of recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var params types.RecipeQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	page, err := h.recipeService.ListRecipes(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetRecipe returns a recipe with its ingredients, tags and times made
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	detail, err := h.recipeService.GetRecipeDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateRecipe creates a recipe and links the requested tags
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Header("Location", "/api/recipes/"+recipe.ID.String())
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}
	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}
	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) AddIngredient(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}
	var req types.AddRecipeIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.recipeService.AddIngredient(c.Request.Context(), id, &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *RecipeHandler) AddTag(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}
	tagID, ok := parseID(c, "tagId", "tag")
	if !ok {
		return
	}

	if err := h.recipeService.AddTag(c.Request.Context(), id, tagID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *RecipeHandler) RecordTimeMade(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}
	if err := h.recipeService.RecordTimeMade(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}
