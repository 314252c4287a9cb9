package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/pkg/logger"
)

// DevHandler exposes the development data generator. Every route answers
// 403 in production.
type DevHandler struct {
	seeder service.ISeeder
	env    config.Environment
	log    *logger.Logger
}

func NewDevHandler(seeder service.ISeeder, env config.Environment, log *logger.Logger) *DevHandler {
	return &DevHandler{
		seeder: seeder,
		env:    env,
		log:    log.WithComponent("dev_handler"),
	}
}

func (h *DevHandler) RegisterRoutes(router *gin.RouterGroup) {
	dev := router.Group("/dev", h.developmentOnly)
	{
		dev.POST("/seed", h.Seed)
		dev.GET("/seed/status", h.Status)
	}
}

func (h *DevHandler) developmentOnly(c *gin.Context) {
	if h.env.IsProduction() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Development endpoints are disabled in production"})
		return
	}
	c.Next()
}

// Seed regenerates development data. clearExisting=true wipes recipes,
// ingredients and tags first.
func (h *DevHandler) Seed(c *gin.Context) {
	clearExisting := false
	if raw := c.Query("clearExisting"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clearExisting must be true or false"})
			return
		}
		clearExisting = v
	}

	result, err := h.seeder.Seed(c.Request.Context(), clearExisting)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *DevHandler) Status(c *gin.Context) {
	status, err := h.seeder.Status(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
