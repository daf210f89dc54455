package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/kanban-api/internal/api"
	"github.com/phrazzld/kanban-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Create API handlers using the application's services
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	tagHandler := api.NewTagHandler(app.tagStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	columnHandler := api.NewColumnHandler(app.columnStore, app.logger)

	// Register routes
	r.Get("/tasks", taskHandler.ListTasks)
	r.Post("/tasks", taskHandler.CreateTask)
	r.Put("/tasks/{id}", taskHandler.UpdateTask)

	r.Get("/tags", tagHandler.ListTags)
	r.Post("/tags", tagHandler.CreateTag)
	r.Put("/tags/{id}", tagHandler.UpdateTag)

	r.Get("/users", userHandler.ListUsers)
	r.Post("/users", userHandler.CreateUser)
	r.Put("/users/{id}", userHandler.UpdateUser)

	r.Get("/columns", columnHandler.ListColumns)
	r.Post("/columns", columnHandler.CreateColumn)
	r.Put("/columns/{id}", columnHandler.UpdateColumn)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithData(w, r, http.StatusOK, "OK")
	})

	return r
}
