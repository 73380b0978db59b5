package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"support-kb/internal/api"
	"support-kb/internal/api/handlers"
	"support-kb/internal/repository"
	"support-kb/internal/service"
	"support-kb/pkg/config"
	"support-kb/pkg/logger"
	"support-kb/pkg/postgres"

	"go.uber.org/zap"
)

// @title Product Support Knowledge API
// @version 1.0
// @description FAQ, troubleshooting and installation lookups over per-product knowledge records, plus support issue logging.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ToolSecret
// @in header
// @name X-Vapi-Secret

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting support knowledge service",
		zap.String("knowledge_source", cfg.Knowledge.Source),
	)

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, cfg.Database.MigrationsDir, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(db, appLogger)
	issueRepo := repository.NewIssueRepository(db, appLogger)

	var source service.KnowledgeSource
	switch cfg.Knowledge.Source {
	case config.KnowledgeSourcePostgres:
		source = productRepo
	default:
		source = repository.NewFileKnowledgeSource(cfg.Knowledge.Dir, appLogger)
	}

	store := service.NewKnowledgeStore(source, appLogger)
	if _, err := store.Catalog(ctx); err != nil {
		// lookups retry the load on demand
		appLogger.Warn("Initial knowledge load failed", zap.Error(err))
	}

	supportService := service.NewSupportService(store, appLogger)
	issueService := service.NewIssueService(issueRepo, productRepo, appLogger)

	productHandler := handlers.NewProductHandler(supportService, appLogger)
	supportHandler := handlers.NewSupportHandler(supportService, appLogger)
	issueHandler := handlers.NewIssueHandler(issueService, appLogger)
	healthHandler := handlers.NewHealthHandler(supportService, store, &cfg.API, appLogger)

	if cfg.Tool.Secret == "" {
		appLogger.Warn("VAPI_SECRET is not set, issue logging and reload are unauthenticated")
	}

	app := api.SetupRouter(
		productHandler,
		supportHandler,
		issueHandler,
		healthHandler,
		&cfg.Server,
		&cfg.Tool,
		appLogger,
	)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
