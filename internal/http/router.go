package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storyloom/internal/handlers"
	"storyloom/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	UniverseService  service.UniverseService
	ContainerService service.ContainerService
	StoryService     service.StoryService
	DB               *sql.DB
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         3600,
	}))

	universeHandler := handlers.NewUniverseHandler(deps.UniverseService)
	containerHandler := handlers.NewContainerHandler(deps.ContainerService)
	storyHandler := handlers.NewStoryHandler(deps.StoryService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Route("/universes", func(r chi.Router) {
			r.Post("/", universeHandler.Create)
			r.Get("/", universeHandler.List)
			r.Route("/{universeID}", func(r chi.Router) {
				r.Get("/", universeHandler.Get)
				r.Patch("/", universeHandler.Update)
				r.Delete("/", universeHandler.Delete)
				r.Get("/containers", containerHandler.ListByUniverse)
				r.Get("/stories", storyHandler.ListByUniverse)
			})
		})

		r.Route("/containers", func(r chi.Router) {
			r.Post("/", containerHandler.Create)
			r.Route("/{containerID}", func(r chi.Router) {
				r.Get("/", containerHandler.Get)
				r.Patch("/", containerHandler.Update)
				r.Delete("/", containerHandler.Delete)
				r.Get("/children", containerHandler.ListChildren)
				r.Get("/subtree", containerHandler.Subtree)
				r.Post("/reorder", containerHandler.Reorder)
			})
		})

		r.Route("/stories", func(r chi.Router) {
			r.Post("/", storyHandler.Create)
			r.Route("/{storyID}", func(r chi.Router) {
				r.Get("/", storyHandler.Get)
				r.Patch("/", storyHandler.Update)
				r.Delete("/", storyHandler.Delete)
				r.Post("/snapshots", storyHandler.CreateSnapshot)
				r.Post("/switch-snapshot", storyHandler.SwitchSnapshot)
				r.Post("/cleanup-snapshots", storyHandler.CleanupSnapshots)
				r.Post("/switch-version", storyHandler.SwitchVersion)
				r.Route("/versions", func(r chi.Router) {
					r.Post("/", storyHandler.CreateVersion)
					r.Get("/", storyHandler.ListVersions)
					r.Route("/{versionID}", func(r chi.Router) {
						r.Patch("/", storyHandler.RenameVersion)
						r.Delete("/", storyHandler.DeleteVersion)
						r.Get("/snapshots", storyHandler.ListSnapshots)
					})
				})
			})
		})

		r.Put("/snapshots/{snapshotID}/content", storyHandler.UpdateSnapshotContent)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
