package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
)

type IngredientHandler struct {
	ingredientService service.IIngredientService
	log               *logger.Logger
}

func NewIngredientHandler(ingredientService service.IIngredientService, log *logger.Logger) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
		log:               log.WithComponent("ingredient_handler"),
	}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.POST("", h.CreateIngredient)
		ingredients.GET("/:id", h.GetIngredient)
		ingredients.DELETE("/:id", h.DeleteIngredient)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredientService.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, ok := parseID(c, "id", "ingredient")
	if !ok {
		return
	}
	ingredient, err := h.ingredientService.GetIngredient(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req types.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ingredient, err := h.ingredientService.CreateIngredient(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Header("Location", "/api/ingredients/"+ingredient.ID.String())
	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c, "id", "ingredient")
	if !ok {
		return
	}
	if err := h.ingredientService.DeleteIngredient(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
