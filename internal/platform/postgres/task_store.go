package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/platform/logger"
	"github.com/phrazzld/kanban-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

const taskColumns = `id, title, description, link, due_date, tag_ids, tags,
	assignee_id, assignee, column_id, board_column, comments, created_at, updated_at`

// taskRow holds the raw column values of a task row before the JSONB
// payloads are decoded into domain types.
type taskRow struct {
	tagIDs      []byte
	tags        []byte
	assignee    []byte
	boardColumn []byte
	comments    []byte
}

// Create implements store.TaskStore.Create
// It saves a new task to the database, handling domain validation.
// Returns validation errors from the domain Task if data is invalid.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	tagIDs, tags, assignee, boardColumn, comments, err := encodeTaskPayloads(task)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.Link,
		task.DueDate,
		tagIDs,
		tags,
		task.AssigneeID,
		assignee,
		task.ColumnID,
		boardColumn,
		comments,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("assignee_id", task.AssigneeID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// It retrieves a task by its unique ID, exactly as stored.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	return task, nil
}

// List implements store.TaskStore.List
// It applies the filter criteria and pagination window in SQL:
// match, then skip, then limit, ordered by creation time. Returns an
// empty slice when nothing matches.
func (s *PostgresTaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args := buildListTasksQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed tasks",
		slog.Int("count", len(tasks)),
		slog.Int("limit", filter.Limit()),
		slog.Int("offset", filter.Offset()))
	return tasks, nil
}

// Update implements store.TaskStore.Update
// It replaces every stored field with the given task's values.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	tagIDs, tags, assignee, boardColumn, comments, err := encodeTaskPayloads(task)
	if err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, link = $3, due_date = $4,
			tag_ids = $5, tags = $6, assignee_id = $7, assignee = $8,
			column_id = $9, board_column = $10, comments = $11, updated_at = $12
		WHERE id = $13
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Link,
		task.DueDate,
		tagIDs,
		tags,
		task.AssigneeID,
		assignee,
		task.ColumnID,
		boardColumn,
		comments,
		task.UpdatedAt,
		task.ID,
	)

	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("task not found for update",
			slog.String("task_id", task.ID.String()))
		return store.ErrTaskNotFound
	}

	log.Info("task updated successfully",
		slog.String("task_id", task.ID.String()))
	return nil
}

// buildListTasksQuery constructs the listing SQL for the given filter.
// Match criteria are added only for filters the caller supplied, each a
// case-insensitive substring match against the stored snapshot fields.
// The window is always LIMIT/OFFSET from the filter's clamped values.
func buildListTasksQuery(filter store.TaskFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.Assignee != nil {
		args = append(args, *filter.Assignee)
		conds = append(conds, fmt.Sprintf("assignee->>'name' ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if filter.Column != nil {
		args = append(args, *filter.Column)
		conds = append(conds, fmt.Sprintf("board_column->>'name' ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if filter.Tags != nil {
		args = append(args, *filter.Tags)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(tags) AS tag WHERE tag->>'name' ILIKE '%%' || $%d || '%%')",
			len(args)))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, filter.Limit(), filter.Offset())
	query += fmt.Sprintf(" ORDER BY created_at ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return query, args
}

// encodeTaskPayloads marshals the task's reference lists and snapshots
// into their JSONB column representations. Absent snapshots and comments
// become SQL NULL rather than JSON null.
func encodeTaskPayloads(task *domain.Task) (tagIDs, tags, assignee, boardColumn, comments []byte, err error) {
	tagIDs, err = json.Marshal(task.TagIDs)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode tag IDs: %w", err)
	}

	snapshots := task.Tags
	if snapshots == nil {
		snapshots = []domain.TagSnapshot{}
	}
	tags, err = json.Marshal(snapshots)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode tag snapshots: %w", err)
	}

	if task.Assignee != nil {
		assignee, err = json.Marshal(task.Assignee)
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode assignee snapshot: %w", err)
		}
	}

	if task.Column != nil {
		boardColumn, err = json.Marshal(task.Column)
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode column snapshot: %w", err)
		}
	}

	if task.Comments != nil {
		comments, err = json.Marshal(task.Comments)
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("failed to encode comments: %w", err)
		}
	}

	return tagIDs, tags, assignee, boardColumn, comments, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row and decodes its JSONB payloads.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var raw taskRow

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Link,
		&task.DueDate,
		&raw.tagIDs,
		&raw.tags,
		&task.AssigneeID,
		&raw.assignee,
		&task.ColumnID,
		&raw.boardColumn,
		&raw.comments,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw.tagIDs, &task.TagIDs); err != nil {
		return nil, fmt.Errorf("failed to decode tag IDs: %w", err)
	}
	if err := json.Unmarshal(raw.tags, &task.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tag snapshots: %w", err)
	}
	if raw.assignee != nil {
		if err := json.Unmarshal(raw.assignee, &task.Assignee); err != nil {
			return nil, fmt.Errorf("failed to decode assignee snapshot: %w", err)
		}
	}
	if raw.boardColumn != nil {
		if err := json.Unmarshal(raw.boardColumn, &task.Column); err != nil {
			return nil, fmt.Errorf("failed to decode column snapshot: %w", err)
		}
	}
	if raw.comments != nil {
		if err := json.Unmarshal(raw.comments, &task.Comments); err != nil {
			return nil, fmt.Errorf("failed to decode comments: %w", err)
		}
	}

	return &task, nil
}
