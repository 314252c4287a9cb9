package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/pkg/logger"
)

// Services bundles what the handlers depend on
type Services struct {
	Recipes     service.IRecipeService
	Ingredients service.IIngredientService
	Tags        service.ITagService
	Units       service.IUnitService
	Seeder      service.ISeeder
	Ping        Pinger
}

// RegisterRoutes mounts the health checks and every /api route. The
// middleware runs on the /api group only.
func RegisterRoutes(router *gin.Engine, svc Services, env config.Environment, log *logger.Logger, middleware ...gin.HandlerFunc) {
	health := NewHealthHandler(svc.Ping)
	router.GET("/health", health.HealthCheck)

	apiGroup := router.Group("/api", middleware...)
	apiGroup.GET("/health", health.HealthCheck)

	NewRecipeHandler(svc.Recipes, log).RegisterRoutes(apiGroup)
	NewIngredientHandler(svc.Ingredients, log).RegisterRoutes(apiGroup)
	NewTagHandler(svc.Tags, log).RegisterRoutes(apiGroup)
	NewUnitHandler(svc.Units, log).RegisterRoutes(apiGroup)
	NewDevHandler(svc.Seeder, env, log).RegisterRoutes(apiGroup)
}
