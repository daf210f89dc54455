package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID          = errors.New("user ID cannot be empty")
	ErrEmptyUserName        = errors.New("user name cannot be empty")
	ErrEmptyUserDescription = errors.New("user description cannot be empty")
	ErrEmptyUserImageURL    = errors.New("user image URL cannot be empty")
)

// User represents a board member that tasks can be assigned to.
// ImageURL points at an already-stored avatar image; this layer treats
// it as an opaque URI.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given name, description and avatar
// image URL. It generates a new UUID for the user ID and sets the
// creation/update timestamps. Returns an error if validation fails.
func NewUser(name, description, imageURL string) (*User, error) {
	user := &User{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyUserName
	}

	if u.Description == "" {
		return ErrEmptyUserDescription
	}

	if u.ImageURL == "" {
		return ErrEmptyUserImageURL
	}

	return nil
}

// UpdateProfile replaces the user's name, description and image URL and
// updates the UpdatedAt timestamp. Returns an error if the new values
// are invalid.
func (u *User) UpdateProfile(name, description, imageURL string) error {
	origName, origDesc, origURL := u.Name, u.Description, u.ImageURL
	u.Name = name
	u.Description = description
	u.ImageURL = imageURL

	if err := u.Validate(); err != nil {
		u.Name, u.Description, u.ImageURL = origName, origDesc, origURL
		return err
	}

	u.UpdatedAt = time.Now().UTC()
	return nil
}
