package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Envelope is the uniform response wrapper: every endpoint, success or
// failure, answers with {"data": ..., "success": bool}.
type Envelope struct {
	Data    interface{} `json:"data"`
	Success bool        `json:"success"`
}

// ErrorPayload carries a sanitized error message inside a failure envelope.
type ErrorPayload struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// respondWithJSON writes the given body with the given status code.
func respondWithJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope with the given status code and data.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	respondWithJSON(w, r, status, Envelope{Data: data, Success: true})
}

// RespondWithError writes a failure envelope with the given status code and
// message. The request ID set by the router middleware is included for
// correlation when present.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := middleware.GetReqID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	respondWithJSON(w, r, status, Envelope{
		Data:    ErrorPayload{Error: message, TraceID: traceID},
		Success: false,
	})
}

// RespondWithErrorAndLog writes a failure envelope carrying only the safe
// user message, and logs the underlying error separately. Server errors
// (5xx) log at ERROR; everything else at DEBUG. The raw error string never
// reaches the client.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := middleware.GetReqID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	respondWithJSON(w, r, status, Envelope{
		Data:    ErrorPayload{Error: userMessage, TraceID: traceID},
		Success: false,
	})
}
