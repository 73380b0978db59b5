package main

import (
	"fmt"
	"os"
	"path/filepath"

	"support-kb/internal/repository"
	"support-kb/pkg/config"
	"support-kb/pkg/logger"
	"support-kb/pkg/postgres"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "seed",
		Usage: "Import per-product knowledge documents into PostgreSQL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory with one <sku>/knowledge.{json,yaml} per product (default: KNOWLEDGE_DIR)",
			},
			&cli.StringFlag{
				Name:  "cache",
				Usage: "Path of the import cache file (default: <dir>/.seed_cache.json)",
			},
			&cli.StringFlag{
				Name:  "migrations",
				Usage: "Migrations directory (default: DB_MIGRATIONS_DIR)",
			},
			&cli.BoolFlag{
				Name:  "skip-migrate",
				Usage: "Do not apply migrations before importing",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Ignore the cache and import every document",
			},
		},
		Action: seedCommand,
	}
}

func seedCommand(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	dir := c.String("dir")
	if dir == "" {
		dir = cfg.Knowledge.Dir
	}
	cacheFile := c.String("cache")
	if cacheFile == "" {
		cacheFile = filepath.Join(dir, ".seed_cache.json")
	}
	migrationsDir := c.String("migrations")
	if migrationsDir == "" {
		migrationsDir = cfg.Database.MigrationsDir
	}

	ctx := c.Context
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		return err
	}
	defer db.Close()

	if !c.Bool("skip-migrate") {
		if err := postgres.RunMigrations(db, migrationsDir, appLogger); err != nil {
			return err
		}
	}

	cache := &CacheData{ProcessedFiles: make(map[string]ProcessedFile)}
	if !c.Bool("force") {
		cache, err = loadCache(cacheFile)
		if err != nil {
			appLogger.Warn("Failed to load cache, will import all documents", zap.Error(err))
			cache = &CacheData{ProcessedFiles: make(map[string]ProcessedFile)}
		}
	}

	appLogger.Info("Starting knowledge import", zap.String("dir", dir))

	source := repository.NewFileKnowledgeSource(dir, appLogger)
	products := repository.NewProductRepository(db, appLogger)
	stats, err := importKnowledge(ctx, source, products, cache, appLogger)
	if err != nil {
		return err
	}

	if err := saveCache(cacheFile, cache); err != nil {
		appLogger.Warn("Failed to save cache", zap.Error(err))
	} else {
		appLogger.Info("Cache saved", zap.Int("processed_files", len(cache.ProcessedFiles)))
	}

	appLogger.Info("Knowledge import completed",
		zap.Int("imported", stats.Imported),
		zap.Int("unchanged", stats.Unchanged),
		zap.Int("failed", stats.Failed),
	)
	return nil
}
