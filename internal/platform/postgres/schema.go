package postgres

import (
	"context"
	"fmt"

	"github.com/phrazzld/kanban-api/internal/store"
)

// schemaDDL creates the entity tables if they are absent. There is no
// migration tooling on purpose; the schema is bootstrapped once at
// startup. Task reference columns carry no foreign keys: references are
// unenforced and may dangle, and readers tolerate that.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS tasks (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	link TEXT NOT NULL,
	due_date TIMESTAMPTZ NOT NULL,
	tag_ids JSONB NOT NULL DEFAULT '[]',
	tags JSONB NOT NULL DEFAULT '[]',
	assignee_id UUID NOT NULL,
	assignee JSONB,
	column_id UUID,
	board_column JSONB,
	comments JSONB,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS tags (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	color TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	image_url TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS board_columns (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the application tables if they do not exist yet.
// It is idempotent and safe to run at every startup.
func EnsureSchema(ctx context.Context, db store.DBTX) error {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}
	return nil
}
