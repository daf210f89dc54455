package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/platform/logger"
	"github.com/phrazzld/kanban-api/internal/store"
)

// PostgresTagStore implements the store.TagStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTagStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTagStore creates a new PostgreSQL implementation of the TagStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTagStore(db store.DBTX, logger *slog.Logger) *PostgresTagStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTagStore{
		db:     db,
		logger: logger.With(slog.String("component", "tag_store")),
	}
}

// Ensure PostgresTagStore implements store.TagStore interface
var _ store.TagStore = (*PostgresTagStore)(nil)

// Create implements store.TagStore.Create
// It saves a new tag to the database, handling domain validation.
func (s *PostgresTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tag.Validate(); err != nil {
		log.Warn("tag validation failed during create",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return err
	}

	query := `
		INSERT INTO tags (id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		tag.ID,
		tag.Name,
		tag.Color,
		tag.CreatedAt,
		tag.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create tag",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return err
	}

	log.Info("tag created successfully",
		slog.String("tag_id", tag.ID.String()),
		slog.String("name", tag.Name))
	return nil
}

// GetByID implements store.TagStore.GetByID
// Returns store.ErrTagNotFound if the tag does not exist.
func (s *PostgresTagStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, color, created_at, updated_at
		FROM tags
		WHERE id = $1
	`

	var tag domain.Tag
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tag.ID,
		&tag.Name,
		&tag.Color,
		&tag.CreatedAt,
		&tag.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("tag not found", slog.String("tag_id", id.String()))
			return nil, store.ErrTagNotFound
		}
		log.Error("failed to get tag by ID",
			slog.String("error", err.Error()),
			slog.String("tag_id", id.String()))
		return nil, err
	}

	return &tag, nil
}

// List implements store.TagStore.List
// It retrieves all tags in insertion order.
func (s *PostgresTagStore) List(ctx context.Context) ([]*domain.Tag, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, color, created_at, updated_at
		FROM tags
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tags", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tags := []*domain.Tag{}
	for rows.Next() {
		var tag domain.Tag
		err := rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt, &tag.UpdatedAt)
		if err != nil {
			log.Error("failed to scan tag row", slog.String("error", err.Error()))
			return nil, err
		}
		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return tags, nil
}

// Update implements store.TagStore.Update
// Returns store.ErrTagNotFound if the tag does not exist.
func (s *PostgresTagStore) Update(ctx context.Context, tag *domain.Tag) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tag.Validate(); err != nil {
		log.Warn("tag validation failed during update",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return err
	}

	query := `
		UPDATE tags
		SET name = $1, color = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		tag.Name,
		tag.Color,
		tag.UpdatedAt,
		tag.ID,
	)

	if err != nil {
		log.Error("failed to update tag",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("tag not found for update", slog.String("tag_id", tag.ID.String()))
		return store.ErrTagNotFound
	}

	log.Info("tag updated successfully", slog.String("tag_id", tag.ID.String()))
	return nil
}
