package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/pkg/logger"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

const presignExpiry = 15 * time.Minute

func main() {
	_ = godotenv.Load()

	root := &cli.Command{
		Name:  "recipesctl",
		Usage: "Maintenance commands for the recipes database",
		Commands: []*cli.Command{
			migrateCommand(),
			seedCommand(),
			statusCommand(),
			exportCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	cfg *config.Config
	db  *gorm.DB
	log *logger.Logger
}

// open loads configuration and connects to the configured database
func open(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{
		Level:       logger.LogLevel(cfg.LogLevel),
		Format:      "text",
		Component:   "recipesctl",
		Environment: string(cfg.Environment),
	})
	db, err := database.New(cfg, log)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, db: db, log: log}, nil
}

func (e *env) close() {
	_ = database.Close(e.db)
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending schema migrations",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "status", Usage: "print migration status instead of migrating"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			if c.Bool("status") {
				return database.MigrationStatus(ctx, e.db)
			}
			if err := database.RunMigrations(ctx, e.db); err != nil {
				return err
			}
			e.log.Info("migrations applied")
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Fill the database with generated development data",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "clear", Usage: "remove existing recipes, ingredients and tags first"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			if e.cfg.Environment.IsProduction() {
				return fmt.Errorf("seeding is disabled in production")
			}
			if err := database.RunMigrations(ctx, e.db); err != nil {
				return err
			}
			result, err := service.NewSeeder(e.db, e.log).Seed(ctx, c.Bool("clear"))
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("%s", result.ErrorMessage)
			}
			return printJSON(result)
		},
	}
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Print row counts for every table",
		Action: func(ctx context.Context, c *cli.Command) error {
			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			status, err := service.NewSeeder(e.db, e.log).Status(ctx)
			if err != nil {
				return err
			}
			return printJSON(status)
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Upload a JSON snapshot of the catalog to S3",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "key",
				Usage: "object key of the snapshot",
				Value: "exports/catalog-" + time.Now().UTC().Format("20060102T150405Z") + ".json",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			store, err := config.NewS3Config(ctx, e.cfg)
			if err != nil {
				return err
			}
			key := c.String("key")
			size, err := service.NewExportService(e.db, store, e.log).Export(ctx, key)
			if err != nil {
				return err
			}
			url, err := store.GeneratePresignedURL(ctx, key, presignExpiry)
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{"key": key, "bytes": size, "url": url})
		},
	}
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
