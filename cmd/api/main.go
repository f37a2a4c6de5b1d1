package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"storyloom/internal/config"
	"storyloom/internal/http"
	"storyloom/internal/service"
	"storyloom/internal/storage"
	"storyloom/internal/wordcount"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API organizes creative writing projects: universes hold a tree of
// containers, containers hold stories, and every story carries a full
// version and snapshot history with switchable active pointers.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Storyloom API
//   description: |
//     Project organizer for serial fiction. Universes group containers
//     (series, arcs, books, folders) into a nested hierarchy, stories live
//     inside containers or at the universe root, and each story tracks
//     alternate versions with per-version snapshot histories.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	universeRepo := storage.NewUniverseRepo(db)
	containerRepo := storage.NewContainerRepo(db)
	storyRepo := storage.NewStoryRepo(db)
	versionRepo := storage.NewVersionRepo(db)
	snapshotRepo := storage.NewSnapshotRepo(db)

	// Create service layer
	universeService := service.NewUniverseService(universeRepo)
	containerService := service.NewContainerService(db, universeRepo, containerRepo)
	storyService := service.NewStoryService(service.StoryServiceParams{
		DB:         db,
		Universes:  universeRepo,
		Containers: containerRepo,
		Stories:    storyRepo,
		Versions:   versionRepo,
		Snapshots:  snapshotRepo,
		Counter:    wordcount.NewCounter(),
		KeepCount:  cfg.SnapshotKeepCount,
	})
	slog.Info("Services initialized", "snapshot_keep_count", cfg.SnapshotKeepCount)

	// Create router with dependencies
	deps := &http.Deps{
		UniverseService:  universeService,
		ContainerService: containerService,
		StoryService:     storyService,
		DB:               db,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
