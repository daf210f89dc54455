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

// TagHandler handles tag-related HTTP requests. Tag operations are plain
// collection CRUD with no cross-entity resolution, so the handler talks
// to the store directly.
type TagHandler struct {
	tagStore store.TagStore
	logger   *slog.Logger
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagStore store.TagStore, logger *slog.Logger) *TagHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TagHandler{
		tagStore: tagStore,
		logger:   logger.With("component", "tag_handler"),
	}
}

// ListTags handles GET /tags requests. The collection is returned whole,
// unfiltered and unpaginated.
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	out := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tagToResponse(tag))
	}
	shared.RespondWithData(w, r, http.StatusOK, out)
}

// CreateTag handles POST /tags requests.
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	tag, err := domain.NewTag(req.Name, req.Color)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.tagStore.Create(r.Context(), tag); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Info("tag created", "tag_id", tag.ID)
	shared.RespondWithData(w, r, http.StatusCreated, tagToResponse(tag))
}

// UpdateTag handles PUT /tags/{id} requests.
func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	var req TagRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	tag, err := h.tagStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := tag.Rename(req.Name, req.Color); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.tagStore.Update(r.Context(), tag); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Info("tag updated", "tag_id", tag.ID)
	shared.RespondWithData(w, r, http.StatusOK, tagToResponse(tag))
}
