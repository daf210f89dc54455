package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID          = errors.New("task ID cannot be empty")
	ErrEmptyTaskTitle       = errors.New("task title cannot be empty")
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrEmptyTaskLink        = errors.New("task link cannot be empty")
	ErrEmptyTaskAssignee    = errors.New("task assignee cannot be empty")
)

// TagSnapshot is a denormalized copy of a Tag as it existed when a task
// write resolved it. It is embedded in the task record and is not kept
// in sync with later edits to the tag itself.
type TagSnapshot struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// UserSnapshot is a denormalized copy of a User taken at resolution time.
type UserSnapshot struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
}

// ColumnSnapshot is a denormalized copy of a Column taken at resolution time.
type ColumnSnapshot struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Task represents a card on the board. It holds the raw reference IDs
// submitted by the caller alongside write-time snapshots of the entities
// those IDs resolved to. The ID lists and snapshots can drift apart from
// the referenced collections: references are not enforced, and a stored
// ID may stop resolving at any time. Readers must tolerate that.
type Task struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	DueDate     time.Time       `json:"due_date"`
	TagIDs      []uuid.UUID     `json:"tag_ids"`
	Tags        []TagSnapshot   `json:"tags"`
	AssigneeID  uuid.UUID       `json:"assignee_id"`
	Assignee    *UserSnapshot   `json:"assignee,omitempty"`
	ColumnID    uuid.NullUUID   `json:"column_id"`
	Column      *ColumnSnapshot `json:"column,omitempty"`
	Comments    []string        `json:"comments,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewTask creates a new Task with the given fields. It generates a new
// UUID for the task ID and sets the creation/update timestamps. A zero
// dueDate defaults to the record-creation time. The tag list is
// normalized so an empty set is stored as an empty slice, never nil.
// Snapshots are left unset; the reference resolver fills them in before
// the task is persisted. Returns an error if validation fails.
func NewTask(
	title, description, link string,
	dueDate time.Time,
	tagIDs []uuid.UUID,
	assigneeID uuid.UUID,
	columnID uuid.NullUUID,
	comments []string,
) (*Task, error) {
	now := time.Now().UTC()

	if dueDate.IsZero() {
		dueDate = now
	}

	if tagIDs == nil {
		tagIDs = []uuid.UUID{}
	}

	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Link:        link,
		DueDate:     dueDate,
		TagIDs:      tagIDs,
		AssigneeID:  assigneeID,
		ColumnID:    columnID,
		Comments:    comments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
// Reference IDs are deliberately not checked for existence here: a task
// may carry dangling references (see the reference resolver).
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	if t.Link == "" {
		return ErrEmptyTaskLink
	}

	if t.AssigneeID == uuid.Nil {
		return ErrEmptyTaskAssignee
	}

	return nil
}

// Replace overwrites every caller-supplied field with the given values,
// mirroring a full-document replace rather than a sparse patch: fields
// the caller left out arrive here as zero values and overwrite whatever
// was stored. A zero dueDate again defaults to the current time.
// Returns an error if the resulting task is invalid.
func (t *Task) Replace(
	title, description, link string,
	dueDate time.Time,
	tagIDs []uuid.UUID,
	assigneeID uuid.UUID,
	columnID uuid.NullUUID,
	comments []string,
) error {
	now := time.Now().UTC()

	if dueDate.IsZero() {
		dueDate = now
	}

	if tagIDs == nil {
		tagIDs = []uuid.UUID{}
	}

	orig := *t

	t.Title = title
	t.Description = description
	t.Link = link
	t.DueDate = dueDate
	t.TagIDs = tagIDs
	t.AssigneeID = assigneeID
	t.ColumnID = columnID
	t.Comments = comments

	if err := t.Validate(); err != nil {
		*t = orig
		return err
	}

	// Replacement invalidates previously embedded snapshots; the
	// reference resolver re-resolves them before the update is stored.
	t.Tags = nil
	t.Assignee = nil
	t.Column = nil
	t.UpdatedAt = now
	return nil
}
