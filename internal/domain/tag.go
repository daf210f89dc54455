package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Tag
var (
	ErrEmptyTagID    = errors.New("tag ID cannot be empty")
	ErrEmptyTagName  = errors.New("tag name cannot be empty")
	ErrEmptyTagColor = errors.New("tag color cannot be empty")
)

// Tag represents a label that can be attached to any number of tasks.
// Tags live in their own collection; tasks refer to them by ID and do
// not own them.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTag creates a new Tag with the given name and color.
// It generates a new UUID for the tag ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewTag(name, color string) (*Tag, error) {
	tag := &Tag{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := tag.Validate(); err != nil {
		return nil, err
	}

	return tag, nil
}

// Validate checks if the Tag has valid data.
// Returns an error if any field fails validation.
func (t *Tag) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTagID
	}

	if t.Name == "" {
		return ErrEmptyTagName
	}

	if t.Color == "" {
		return ErrEmptyTagColor
	}

	return nil
}

// Rename replaces the tag's name and color and updates the UpdatedAt
// timestamp. Returns an error if the new values are invalid.
func (t *Tag) Rename(name, color string) error {
	origName, origColor := t.Name, t.Color
	t.Name = name
	t.Color = color

	if err := t.Validate(); err != nil {
		t.Name, t.Color = origName, origColor
		return err
	}

	t.UpdatedAt = time.Now().UTC()
	return nil
}
