// main.go
package main

import (
	"context"
	"log"

	"moviebuzz/cmd"
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/events"
	"moviebuzz/internal/wire"
	"moviebuzz/pkg/cache"
	"moviebuzz/pkg/database"
	"moviebuzz/pkg/omdb"
	"moviebuzz/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// External services. Cache and publisher degrade gracefully when their
	// backends are unreachable.
	omdbClient := omdb.NewClient(config.OMDB, logger)
	movieCache := cache.NewCache(config.Redis, logger)
	publisher := events.NewPublisher(config.Queue, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, omdbClient, movieCache, publisher, logger)

	// Make sure the admin account exists before taking traffic
	if err := app.Service.Auth.EnsureAdminAccount(context.Background()); err != nil {
		logger.Fatal("Failed to ensure admin account", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
