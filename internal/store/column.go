package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
)

// ColumnStore defines the interface for board column data persistence.
type ColumnStore interface {
	// Create saves a new column to the store.
	// Returns validation errors from the domain Column if data is invalid.
	Create(ctx context.Context, column *domain.Column) error

	// GetByID retrieves a column by its unique ID.
	// Returns ErrColumnNotFound if the column does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error)

	// List retrieves all columns in insertion order.
	List(ctx context.Context) ([]*domain.Column, error)

	// Update replaces an existing column's fields.
	// Returns ErrColumnNotFound if the column does not exist.
	Update(ctx context.Context, column *domain.Column) error
}
