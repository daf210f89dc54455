package api

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/service"
)

// Common request/response structures

// TaskRequest defines the payload for task create and update. The same
// shape serves both: an update is a full-document replace, so omitted
// optional fields overwrite the stored record with their zero values.
type TaskRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Link        string   `json:"link"        validate:"required"`
	DueDate     string   `json:"due_date"    validate:"omitempty"`
	TagIDs      []string `json:"tag_ids"     validate:"omitempty,dive,uuid"`
	AssigneeID  string   `json:"assignee_id" validate:"required,uuid"`
	ColumnID    string   `json:"column_id"   validate:"omitempty,uuid"`
	Comments    []string `json:"comments"    validate:"omitempty"`
}

// toParams converts the validated request into service-layer params. The
// uuid tags above guarantee the parses succeed; a malformed ID never gets
// this far.
func (req *TaskRequest) toParams() (service.TaskParams, error) {
	params := service.TaskParams{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Comments:    req.Comments,
	}

	if req.DueDate != "" {
		due, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			return service.TaskParams{}, fmt.Errorf("invalid due_date: %w", err)
		}
		params.DueDate = due
	}

	assigneeID, err := uuid.Parse(req.AssigneeID)
	if err != nil {
		return service.TaskParams{}, fmt.Errorf("invalid assignee_id: %w", err)
	}
	params.AssigneeID = assigneeID

	params.TagIDs = make([]uuid.UUID, 0, len(req.TagIDs))
	for _, raw := range req.TagIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return service.TaskParams{}, fmt.Errorf("invalid tag id %q: %w", raw, err)
		}
		params.TagIDs = append(params.TagIDs, id)
	}

	if req.ColumnID != "" {
		columnID, err := uuid.Parse(req.ColumnID)
		if err != nil {
			return service.TaskParams{}, fmt.Errorf("invalid column_id: %w", err)
		}
		params.ColumnID = uuid.NullUUID{UUID: columnID, Valid: true}
	}

	return params, nil
}

// TaskResponse is the task view returned by every task endpoint: scalar
// fields plus the expanded (or write-time embedded) reference snapshots.
type TaskResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Link        string                  `json:"link"`
	DueDate     time.Time               `json:"due_date"`
	Tags        []domain.TagSnapshot    `json:"tags"`
	Assignee    *domain.UserSnapshot    `json:"assignee"`
	Column      *domain.ColumnSnapshot  `json:"column"`
	Comments    []string                `json:"comments"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	comments := task.Comments
	if comments == nil {
		comments = []string{}
	}
	tags := task.Tags
	if tags == nil {
		tags = []domain.TagSnapshot{}
	}

	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Link:        task.Link,
		DueDate:     task.DueDate,
		Tags:        tags,
		Assignee:    task.Assignee,
		Column:      task.Column,
		Comments:    comments,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// tasksToResponse converts a task page, normalizing an empty page to an
// empty JSON array rather than null.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

// TagRequest defines the payload for tag create and update.
type TagRequest struct {
	Name  string `json:"name"  validate:"required"`
	Color string `json:"color" validate:"required"`
}

// TagResponse represents the response data for a tag.
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func tagToResponse(tag *domain.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID.String(),
		Name:      tag.Name,
		Color:     tag.Color,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

// UserRequest defines the payload for user create and update.
type UserRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url"   validate:"required"`
}

// UserResponse represents the response data for a user.
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Description: user.Description,
		ImageURL:    user.ImageURL,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ColumnRequest defines the payload for column create and update.
type ColumnRequest struct {
	Name string `json:"name" validate:"required"`
}

// ColumnResponse represents the response data for a board column.
type ColumnResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func columnToResponse(column *domain.Column) ColumnResponse {
	return ColumnResponse{
		ID:        column.ID.String(),
		Name:      column.Name,
		CreatedAt: column.CreatedAt,
		UpdatedAt: column.UpdatedAt,
	}
}
