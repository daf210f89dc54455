package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/service"
	"github.com/phrazzld/kanban-api/internal/store"
)

var errBoom = errors.New("boom")

// fakeTaskService records the last call and plays back canned results.
type fakeTaskService struct {
	lastParams service.TaskParams
	lastID     uuid.UUID
	lastFilter store.TaskFilter

	task  *domain.Task
	tasks []*domain.Task
	err   error
}

func (f *fakeTaskService) CreateTask(ctx context.Context, params service.TaskParams) (*domain.Task, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.task, nil
}

func (f *fakeTaskService) UpdateTask(ctx context.Context, id uuid.UUID, params service.TaskParams) (*domain.Task, error) {
	f.lastID = id
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.task, nil
}

func (f *fakeTaskService) ListTasks(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.tasks, nil
}

// fakeTagStore is a minimal in-memory TagStore for handler tests.
type fakeTagStore struct {
	tags map[uuid.UUID]*domain.Tag
	err  error
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{tags: make(map[uuid.UUID]*domain.Tag)}
}

func (f *fakeTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	if f.err != nil {
		return f.err
	}
	copied := *tag
	f.tags[tag.ID] = &copied
	return nil
}

func (f *fakeTagStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	tag, ok := f.tags[id]
	if !ok {
		return nil, store.ErrTagNotFound
	}
	copied := *tag
	return &copied, nil
}

func (f *fakeTagStore) List(ctx context.Context) ([]*domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Tag{}
	for _, tag := range f.tags {
		copied := *tag
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeTagStore) Update(ctx context.Context, tag *domain.Tag) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.tags[tag.ID]; !ok {
		return store.ErrTagNotFound
	}
	copied := *tag
	f.tags[tag.ID] = &copied
	return nil
}
