package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/periodic-api/internal/api"
	apiMiddleware "github.com/phrazzld/periodic-api/internal/api/middleware"
)

const requestTimeout = 30 * time.Second

// setupRouter creates the application router with middleware and routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(apiMiddleware.Trace(app.logger))

	elementHandler := api.NewElementHandler(app.catalog, api.CatalogDefaults{
		Mode:      app.mode,
		Precision: app.config.Catalog.Precision,
	}, app.logger)

	r.Route("/api", elementHandler.Routes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
