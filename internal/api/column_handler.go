package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/api/shared"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/store"
)

// ColumnHandler handles board-column HTTP requests.
type ColumnHandler struct {
	columnStore store.ColumnStore
	logger      *slog.Logger
}

// NewColumnHandler creates a new ColumnHandler
func NewColumnHandler(columnStore store.ColumnStore, logger *slog.Logger) *ColumnHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ColumnHandler{
		columnStore: columnStore,
		logger:      logger.With("component", "column_handler"),
	}
}

// ListColumns handles GET /columns requests.
func (h *ColumnHandler) ListColumns(w http.ResponseWriter, r *http.Request) {
	columns, err := h.columnStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	out := make([]ColumnResponse, 0, len(columns))
	for _, column := range columns {
		out = append(out, columnToResponse(column))
	}
	shared.RespondWithData(w, r, http.StatusOK, out)
}

// CreateColumn handles POST /columns requests.
func (h *ColumnHandler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	var req ColumnRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	column, err := domain.NewColumn(req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.columnStore.Create(r.Context(), column); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Info("column created", "column_id", column.ID)
	shared.RespondWithData(w, r, http.StatusCreated, columnToResponse(column))
}

// UpdateColumn handles PUT /columns/{id} requests.
func (h *ColumnHandler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid column ID")
		return
	}

	var req ColumnRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	column, err := h.columnStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := column.Rename(req.Name); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.columnStore.Update(r.Context(), column); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Info("column updated", "column_id", column.ID)
	shared.RespondWithData(w, r, http.StatusOK, columnToResponse(column))
}
