package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/router"
	"github.com/pageza/recipes/backend/internal/server"
	"github.com/pageza/recipes/backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	// A missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.New(logger.DefaultConfig()).Fatal("failed to load configuration", "error", err)
	}

	log := logger.New(logger.Config{
		Level:        logger.LogLevel(cfg.LogLevel),
		Format:       cfg.LogFormat,
		EnableCaller: true,
		Environment:  string(cfg.Environment),
	})

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", "error", err)
	}
	log.Info("server stopped")
}

// run owns every resource so its deferred cleanup happens before main exits
func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Warn("redis unavailable, continuing without rate limiting", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	engine := router.Setup(cfg, db, redisClient, log)
	return server.New(cfg.Addr(), engine, log).Run(ctx)
}
