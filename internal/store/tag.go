package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
)

// TagStore defines the interface for tag data persistence.
type TagStore interface {
	// Create saves a new tag to the store.
	// Returns validation errors from the domain Tag if data is invalid.
	Create(ctx context.Context, tag *domain.Tag) error

	// GetByID retrieves a tag by its unique ID.
	// Returns ErrTagNotFound if the tag does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)

	// List retrieves all tags in insertion order.
	List(ctx context.Context) ([]*domain.Tag, error)

	// Update replaces an existing tag's fields.
	// Returns ErrTagNotFound if the tag does not exist.
	Update(ctx context.Context, tag *domain.Tag) error
}
