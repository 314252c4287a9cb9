package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/api"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/middleware"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/pkg/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup builds the engine with middleware, services and routes. A nil
// redisClient disables rate limiting.
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logger.Logger) *gin.Engine {
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.RequestLogger(log.WithComponent("http")))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.NoRoute(middleware.NotFound())

	limiter := middleware.NewWriteRateLimiter(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow)
	if !limiter.Enabled() {
		log.Warn("rate limiting disabled: no Redis connection")
	}

	services := api.Services{
		Recipes:     service.NewRecipeService(db, log),
		Ingredients: service.NewIngredientService(db, log),
		Tags:        service.NewTagService(db, log),
		Units:       service.NewUnitService(db, log),
		Seeder:      service.NewSeeder(db, log),
		Ping: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	}
	api.RegisterRoutes(router, services, cfg.Environment, log, limiter.RateLimitMiddleware())

	return router
}
