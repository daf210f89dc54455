package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/kanban-api/internal/config"
	"github.com/phrazzld/kanban-api/internal/platform/postgres"
	"github.com/phrazzld/kanban-api/internal/service"
	"github.com/phrazzld/kanban-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	taskStore   store.TaskStore
	tagStore    store.TagStore
	userStore   store.UserStore
	columnStore store.ColumnStore

	// Service interfaces
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// The schema is ensured at startup from embedded DDL.
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	// Initialize stores
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.tagStore = postgres.NewPostgresTagStore(db, logger)
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.columnStore = postgres.NewPostgresColumnStore(db, logger)

	// Initialize the reference resolver over the entity stores
	resolver, err := service.NewReferenceResolver(
		app.tagStore,
		app.userStore,
		app.columnStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reference resolver: %w", err)
	}

	// Initialize task service
	app.taskService, err = service.NewTaskService(app.taskStore, resolver, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
