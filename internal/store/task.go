package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
)

// Pagination defaults applied when the caller leaves page/perPage unset.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
)

// TaskFilter carries the optional match criteria and pagination window
// for a task listing. Each criterion is present only when the caller
// supplied it; an absent criterion imposes no constraint at all (it is
// not matched against the empty string). Matching is a case-insensitive
// substring match against the task's stored snapshot fields.
type TaskFilter struct {
	// Assignee matches against the stored assignee snapshot's name.
	Assignee *string

	// Column matches against the stored column snapshot's name.
	Column *string

	// Tags matches against the name of any stored tag snapshot.
	Tags *string

	// Page is 1-based; values below 1 behave like page 1.
	Page int

	// PerPage caps the window size; values below 1 fall back to
	// DefaultPerPage. The upstream behavior for zero/negative values was
	// unspecified, so clamping is a deliberate choice here.
	PerPage int
}

// Limit returns the effective page size.
func (f TaskFilter) Limit() int {
	if f.PerPage < 1 {
		return DefaultPerPage
	}
	return f.PerPage
}

// Offset returns the number of records to skip, (page-1)*perPage,
// clamped to zero so a non-positive page can never produce a negative
// window.
func (f TaskFilter) Offset() int {
	offset := (f.Page - 1) * f.Limit()
	if offset < 0 {
		return 0
	}
	return offset
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// It handles domain validation internally.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID, exactly as stored:
	// reference IDs and write-time snapshots, no read-time expansion.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List retrieves the tasks matching the filter criteria, windowed by
	// the filter's pagination, in insertion (creation) order. The
	// pipeline is filter, then skip, then limit; expansion of reference
	// IDs is the caller's concern. Returns an empty slice when nothing
	// matches.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)

	// Update replaces the stored task row with the given task's fields.
	// Every field overwrites the stored value, including those the
	// boundary caller omitted. Returns ErrTaskNotFound if the task does
	// not exist; no row is created.
	Update(ctx context.Context, task *domain.Task) error
}
