package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/service"
	"github.com/phrazzld/kanban-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"task not found (service)", service.ErrTaskNotFound, http.StatusNotFound},
		{"task not found (store)", store.ErrTaskNotFound, http.StatusNotFound},
		{"tag not found", store.ErrTagNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"column not found", store.ErrColumnNotFound, http.StatusNotFound},
		{"empty title", domain.ErrEmptyTaskTitle, http.StatusBadRequest},
		{"empty tag color", domain.ErrEmptyTagColor, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("something broke"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("loading: %w", store.ErrTaskNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"task not found", service.ErrTaskNotFound, "Task not found"},
		{"tag not found", store.ErrTagNotFound, "Tag not found"},
		{"empty title", domain.ErrEmptyTaskTitle, "task title cannot be empty"},
		{"unknown error", errors.New("pq: connection refused"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessage_UnwrapsServiceWrapper(t *testing.T) {
	wrapped := service.NewTaskServiceError("create_task", "invalid task payload", domain.ErrEmptyTaskTitle)

	// Only the innermost sentinel text reaches the client, not the
	// service wrapper prose.
	assert.Equal(t, "task title cannot be empty", GetSafeErrorMessage(wrapped))
}

func TestSanitizeValidationError(t *testing.T) {
	err := errors.New(
		"Key: 'TaskRequest.Title' Error:Field validation for 'Title' failed on the 'required' tag")
	assert.Equal(t, "Invalid Title: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
