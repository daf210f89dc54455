package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/store"
)

// ReferenceResolver looks up the raw tag/assignee/column identifiers on
// a task against their collections. It backs two distinct operations:
//
//   - Resolve, on the write path, embeds snapshots of the referenced
//     entities as they exist right now, so stored task records are
//     self-contained. Snapshots go stale when the referenced entity is
//     later edited; that staleness is deliberate and is not repaired
//     until the task itself is rewritten.
//   - Expand, on the read path, re-resolves the stored IDs live so a
//     fresh read always reflects the referenced entities' current state.
//
// In both directions an identifier that fails to resolve degrades
// silently: tags are dropped, assignee/column come back absent. A
// dangling reference is never a read or write error.
type ReferenceResolver struct {
	tagStore    store.TagStore
	userStore   store.UserStore
	columnStore store.ColumnStore
	logger      *slog.Logger
}

// NewReferenceResolver creates a ReferenceResolver over the given
// entity stores. If logger is nil, a default logger will be used.
func NewReferenceResolver(
	tagStore store.TagStore,
	userStore store.UserStore,
	columnStore store.ColumnStore,
	logger *slog.Logger,
) (*ReferenceResolver, error) {
	if tagStore == nil {
		return nil, fmt.Errorf("tagStore cannot be nil")
	}
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if columnStore == nil {
		return nil, fmt.Errorf("columnStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ReferenceResolver{
		tagStore:    tagStore,
		userStore:   userStore,
		columnStore: columnStore,
		logger:      logger.With("component", "reference_resolver"),
	}, nil
}

// Resolve prepares a task for persistence: it filters the submitted tag
// IDs down to the ones that resolve, embeds snapshots for them, and
// embeds assignee/column snapshots where those references resolve. The
// assignee and column IDs are stored as submitted even when they do not
// resolve; only the snapshot is absent. The write proceeds regardless.
func (r *ReferenceResolver) Resolve(ctx context.Context, task *domain.Task) error {
	tagIDs, tagSnapshots, err := r.resolveTags(ctx, task.TagIDs)
	if err != nil {
		return err
	}
	task.TagIDs = tagIDs
	task.Tags = tagSnapshots

	assignee, err := r.resolveAssignee(ctx, task.AssigneeID)
	if err != nil {
		return err
	}
	task.Assignee = assignee

	column, err := r.resolveColumn(ctx, task.ColumnID)
	if err != nil {
		return err
	}
	task.Column = column

	return nil
}

// Expand substitutes the task's stored reference IDs with freshly
// resolved snapshots for a read response. Unlike Resolve it never
// rewrites the stored ID lists: a dangling tag ID stays in TagIDs, it
// just contributes nothing to the expanded view.
func (r *ReferenceResolver) Expand(ctx context.Context, task *domain.Task) error {
	_, tagSnapshots, err := r.resolveTags(ctx, task.TagIDs)
	if err != nil {
		return err
	}
	task.Tags = tagSnapshots

	assignee, err := r.resolveAssignee(ctx, task.AssigneeID)
	if err != nil {
		return err
	}
	task.Assignee = assignee

	column, err := r.resolveColumn(ctx, task.ColumnID)
	if err != nil {
		return err
	}
	task.Column = column

	return nil
}

// resolveTags looks up each tag ID, silently dropping the ones that no
// longer resolve. The returned ID list is the resolvable subset, in
// submission order; it may be shorter than the input, including empty.
func (r *ReferenceResolver) resolveTags(
	ctx context.Context,
	ids []uuid.UUID,
) ([]uuid.UUID, []domain.TagSnapshot, error) {
	resolved := make([]uuid.UUID, 0, len(ids))
	snapshots := make([]domain.TagSnapshot, 0, len(ids))

	for _, id := range ids {
		tag, err := r.tagStore.GetByID(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				r.logger.Debug("dropping unresolvable tag reference",
					"tag_id", id)
				continue
			}
			return nil, nil, fmt.Errorf("failed to resolve tag %s: %w", id, err)
		}

		resolved = append(resolved, tag.ID)
		snapshots = append(snapshots, domain.TagSnapshot{
			ID:    tag.ID,
			Name:  tag.Name,
			Color: tag.Color,
		})
	}

	return resolved, snapshots, nil
}

// resolveAssignee looks up the assignee, returning a nil snapshot when
// the reference dangles.
func (r *ReferenceResolver) resolveAssignee(
	ctx context.Context,
	id uuid.UUID,
) (*domain.UserSnapshot, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	user, err := r.userStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			r.logger.Debug("assignee reference does not resolve",
				"user_id", id)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve assignee %s: %w", id, err)
	}

	return &domain.UserSnapshot{
		ID:          user.ID,
		Name:        user.Name,
		Description: user.Description,
		ImageURL:    user.ImageURL,
	}, nil
}

// resolveColumn looks up the column when one was submitted, returning a
// nil snapshot when absent or dangling.
func (r *ReferenceResolver) resolveColumn(
	ctx context.Context,
	id uuid.NullUUID,
) (*domain.ColumnSnapshot, error) {
	if !id.Valid {
		return nil, nil
	}

	column, err := r.columnStore.GetByID(ctx, id.UUID)
	if err != nil {
		if store.IsNotFoundError(err) {
			r.logger.Debug("column reference does not resolve",
				"column_id", id.UUID)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve column %s: %w", id.UUID, err)
	}

	return &domain.ColumnSnapshot{
		ID:   column.ID,
		Name: column.Name,
	}, nil
}
