package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/service"
	"github.com/phrazzld/kanban-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrTagNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrColumnNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrEmptyTaskTitle),
		errors.Is(err, domain.ErrEmptyTaskDescription),
		errors.Is(err, domain.ErrEmptyTaskLink),
		errors.Is(err, domain.ErrEmptyTaskAssignee),
		errors.Is(err, domain.ErrEmptyTagName),
		errors.Is(err, domain.ErrEmptyTagColor),
		errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrEmptyUserDescription),
		errors.Is(err, domain.ErrEmptyUserImageURL),
		errors.Is(err, domain.ErrEmptyColumnName):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrTagNotFound):
		return "Tag not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrColumnNotFound):
		return "Column not found"

	// Validation errors carry field-level sentinel messages that are safe
	// to surface as-is.
	case errors.Is(err, domain.ErrEmptyTaskTitle),
		errors.Is(err, domain.ErrEmptyTaskDescription),
		errors.Is(err, domain.ErrEmptyTaskLink),
		errors.Is(err, domain.ErrEmptyTaskAssignee),
		errors.Is(err, domain.ErrEmptyTagName),
		errors.Is(err, domain.ErrEmptyTagColor),
		errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrEmptyUserDescription),
		errors.Is(err, domain.ErrEmptyUserImageURL),
		errors.Is(err, domain.ErrEmptyColumnName):
		return sentinelMessage(err)

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// sentinelMessage unwraps to the innermost error so the service wrapper
// prose never reaches the client, only the field-level sentinel text.
func sentinelMessage(err error) string {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err.Error()
		}
		err = inner
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'TaskRequest.Title' Error:Field validation for 'Title' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "uuid":
		return "invalid identifier format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
