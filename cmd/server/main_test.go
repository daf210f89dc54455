package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/kanban-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func testApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		},
		logger: slog.Default(),
	}
}

func TestSetupRouter_HealthCheck(t *testing.T) {
	app := testApplication()
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"OK","success":true}`, rec.Body.String())
}

func TestSetupRouter_UnknownRoute(t *testing.T) {
	app := testApplication()
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
