package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/periodic-api/internal/config"
	"github.com/phrazzld/periodic-api/internal/periodic"
	"github.com/phrazzld/periodic-api/internal/platform/postgres"
	"github.com/phrazzld/periodic-api/internal/service"
	"github.com/phrazzld/periodic-api/internal/store"
)

// application holds the shared application dependencies and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when no database is configured.
	db            *sql.DB
	quantityStore store.QuantityStore

	catalog service.CatalogService
	mode    periodic.Mode
}

// newApplication creates an application from already-established core
// dependencies. db may be nil.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	mode, err := periodic.ParseMode(cfg.Catalog.Mode)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog mode: %w", err)
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		mode:   mode,
	}

	if db != nil {
		app.quantityStore = postgres.NewPostgresQuantityStore(db, logger)
	}

	app.catalog, err = service.NewCatalogService(db, app.quantityStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	logger.Info("Application initialized successfully",
		slog.Bool("quantity_store", app.quantityStore != nil))
	return app, nil
}

// seed brings the schema up to date and upserts the built-in tables.
func (app *application) seed(ctx context.Context) error {
	if app.db == nil {
		return errDatabaseRequired
	}
	if err := handleMigrations(ctx, app.db, postgres.MigrateUp, app.logger); err != nil {
		return err
	}

	n, err := app.catalog.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed quantities: %w", err)
	}
	app.logger.Info("Quantity store seeded", slog.Int("records", n))
	return nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
	app.logger.Info("Application shutdown completed")
}
