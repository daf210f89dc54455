package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Column
var (
	ErrEmptyColumnID   = errors.New("column ID cannot be empty")
	ErrEmptyColumnName = errors.New("column name cannot be empty")
)

// Column represents a board column (e.g. "To Do", "In Progress").
// Tasks refer to a column by ID; a task without a column is simply
// unassigned.
type Column struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewColumn creates a new Column with the given name.
// It generates a new UUID for the column ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewColumn(name string) (*Column, error) {
	column := &Column{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := column.Validate(); err != nil {
		return nil, err
	}

	return column, nil
}

// Validate checks if the Column has valid data.
// Returns an error if any field fails validation.
func (c *Column) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyColumnID
	}

	if c.Name == "" {
		return ErrEmptyColumnName
	}

	return nil
}

// Rename replaces the column's name and updates the UpdatedAt timestamp.
// Returns an error if the new name is invalid.
func (c *Column) Rename(name string) error {
	if name == "" {
		return ErrEmptyColumnName
	}

	c.Name = name
	c.UpdatedAt = time.Now().UTC()
	return nil
}
