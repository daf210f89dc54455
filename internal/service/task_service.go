package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/store"
)

// Common sentinel errors for TaskService
var (
	// ErrTaskNotFound indicates that the task does not exist
	ErrTaskNotFound = errors.New("task not found")
)

// TaskParams carries the caller-submitted fields of a task write. The
// same set is used for create and update: an update is a full-document
// replace, so fields the boundary caller omitted arrive as zero values
// and overwrite the stored record.
type TaskParams struct {
	Title       string
	Description string
	Link        string
	DueDate     time.Time
	TagIDs      []uuid.UUID
	AssigneeID  uuid.UUID
	ColumnID    uuid.NullUUID
	Comments    []string
}

// TaskService provides task-related operations: validated writes with
// reference resolution, and filtered, paginated, expanded reads.
type TaskService interface {
	// CreateTask validates the params, resolves the submitted references
	// into embedded snapshots, and persists the task. Unresolvable tag
	// IDs are dropped; an unresolvable assignee or column leaves the
	// snapshot absent but never fails the write.
	CreateTask(ctx context.Context, params TaskParams) (*domain.Task, error)

	// UpdateTask replaces every field of an existing task with the given
	// params and re-resolves its references. Returns ErrTaskNotFound if
	// no task with the ID exists; no record is created in that case.
	UpdateTask(ctx context.Context, id uuid.UUID, params TaskParams) (*domain.Task, error)

	// ListTasks returns the page of tasks matching the filter. The store
	// applies match, skip and limit in that order; each returned task's
	// reference IDs are then expanded live into full nested entities,
	// with dangling references expanding to absent values.
	ListTasks(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error)
}

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns known sentinel errors directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	resolver  *ReferenceResolver
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	resolver *ReferenceResolver,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}
	if resolver == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "resolver cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		resolver:  resolver,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// CreateTask validates, resolves references and persists a new task.
// Validation runs before resolution, so an invalid task is rejected
// without consulting the tag/user/column stores at all.
func (s *taskServiceImpl) CreateTask(ctx context.Context, params TaskParams) (*domain.Task, error) {
	task, err := domain.NewTask(
		params.Title, params.Description, params.Link,
		params.DueDate, params.TagIDs, params.AssigneeID,
		params.ColumnID, params.Comments,
	)
	if err != nil {
		s.logger.Warn("invalid task payload on create", "error", err)
		return nil, NewTaskServiceError("create_task", "invalid task payload", err)
	}

	if err := s.resolver.Resolve(ctx, task); err != nil {
		s.logger.Error("failed to resolve task references",
			"error", err,
			"task_id", task.ID)
		return nil, NewTaskServiceError("create_task", "failed to resolve references", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to persist task",
			"error", err,
			"task_id", task.ID)
		return nil, NewTaskServiceError("create_task", "failed to persist task", err)
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"assignee_id", task.AssigneeID,
		"tag_count", len(task.TagIDs))
	return task, nil
}

// UpdateTask performs a full-document replace of an existing task,
// re-resolving all references against the current entity state.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	params TaskParams,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found for update", "task_id", id)
			return nil, ErrTaskNotFound
		}
		return nil, NewTaskServiceError("update_task", "failed to load task", err)
	}

	err = task.Replace(
		params.Title, params.Description, params.Link,
		params.DueDate, params.TagIDs, params.AssigneeID,
		params.ColumnID, params.Comments,
	)
	if err != nil {
		s.logger.Warn("invalid task payload on update",
			"error", err,
			"task_id", id)
		return nil, NewTaskServiceError("update_task", "invalid task payload", err)
	}

	if err := s.resolver.Resolve(ctx, task); err != nil {
		s.logger.Error("failed to resolve task references",
			"error", err,
			"task_id", id)
		return nil, NewTaskServiceError("update_task", "failed to resolve references", err)
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		// The task can disappear between the load and the write; the
		// store gives no stronger guarantee than single-row atomicity.
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to persist task update",
			"error", err,
			"task_id", id)
		return nil, NewTaskServiceError("update_task", "failed to persist task", err)
	}

	s.logger.Info("task updated", "task_id", id)
	return task, nil
}

// ListTasks runs the read pipeline: filtered, windowed fetch from the
// store, then live expansion of each task's references.
func (s *taskServiceImpl) ListTasks(
	ctx context.Context,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	for _, task := range tasks {
		if err := s.resolver.Expand(ctx, task); err != nil {
			s.logger.Error("failed to expand task references",
				"error", err,
				"task_id", task.ID)
			return nil, NewTaskServiceError("list_tasks", "failed to expand references", err)
		}
	}

	s.logger.Debug("listed tasks", "count", len(tasks))
	return tasks, nil
}
