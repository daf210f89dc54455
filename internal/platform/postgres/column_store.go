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

// PostgresColumnStore implements the store.ColumnStore interface
// using a PostgreSQL database as the storage backend.
// The table is named board_columns to stay clear of the SQL keyword.
type PostgresColumnStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresColumnStore creates a new PostgreSQL implementation of the ColumnStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresColumnStore(db store.DBTX, logger *slog.Logger) *PostgresColumnStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresColumnStore{
		db:     db,
		logger: logger.With(slog.String("component", "column_store")),
	}
}

// Ensure PostgresColumnStore implements store.ColumnStore interface
var _ store.ColumnStore = (*PostgresColumnStore)(nil)

// Create implements store.ColumnStore.Create
// It saves a new column to the database, handling domain validation.
func (s *PostgresColumnStore) Create(ctx context.Context, column *domain.Column) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := column.Validate(); err != nil {
		log.Warn("column validation failed during create",
			slog.String("error", err.Error()),
			slog.String("column_id", column.ID.String()))
		return err
	}

	query := `
		INSERT INTO board_columns (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		column.ID,
		column.Name,
		column.CreatedAt,
		column.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create column",
			slog.String("error", err.Error()),
			slog.String("column_id", column.ID.String()))
		return err
	}

	log.Info("column created successfully",
		slog.String("column_id", column.ID.String()),
		slog.String("name", column.Name))
	return nil
}

// GetByID implements store.ColumnStore.GetByID
// Returns store.ErrColumnNotFound if the column does not exist.
func (s *PostgresColumnStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at, updated_at
		FROM board_columns
		WHERE id = $1
	`

	var column domain.Column
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&column.ID,
		&column.Name,
		&column.CreatedAt,
		&column.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("column not found", slog.String("column_id", id.String()))
			return nil, store.ErrColumnNotFound
		}
		log.Error("failed to get column by ID",
			slog.String("error", err.Error()),
			slog.String("column_id", id.String()))
		return nil, err
	}

	return &column, nil
}

// List implements store.ColumnStore.List
// It retrieves all columns in insertion order.
func (s *PostgresColumnStore) List(ctx context.Context) ([]*domain.Column, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at, updated_at
		FROM board_columns
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query columns", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	columns := []*domain.Column{}
	for rows.Next() {
		var column domain.Column
		err := rows.Scan(&column.ID, &column.Name, &column.CreatedAt, &column.UpdatedAt)
		if err != nil {
			log.Error("failed to scan column row", slog.String("error", err.Error()))
			return nil, err
		}
		columns = append(columns, &column)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return columns, nil
}

// Update implements store.ColumnStore.Update
// Returns store.ErrColumnNotFound if the column does not exist.
func (s *PostgresColumnStore) Update(ctx context.Context, column *domain.Column) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := column.Validate(); err != nil {
		log.Warn("column validation failed during update",
			slog.String("error", err.Error()),
			slog.String("column_id", column.ID.String()))
		return err
	}

	query := `
		UPDATE board_columns
		SET name = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		column.Name,
		column.UpdatedAt,
		column.ID,
	)

	if err != nil {
		log.Error("failed to update column",
			slog.String("error", err.Error()),
			slog.String("column_id", column.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("column_id", column.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("column not found for update", slog.String("column_id", column.ID.String()))
		return store.ErrColumnNotFound
	}

	log.Info("column updated successfully", slog.String("column_id", column.ID.String()))
	return nil
}
