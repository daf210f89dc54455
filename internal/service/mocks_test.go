package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/store"
)

// In-memory store fakes for service unit tests. They honor the store
// contracts at single-record granularity; the task fake applies only the
// pagination window since substring matching lives in SQL and is covered
// by the postgres integration tests.

type fakeTagStore struct {
	mu   sync.Mutex
	tags map[uuid.UUID]*domain.Tag
	err  error // when set, every call fails with this error
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{tags: make(map[uuid.UUID]*domain.Tag)}
}

func (f *fakeTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	copied := *tag
	f.tags[tag.ID] = &copied
	return nil
}

func (f *fakeTagStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Tag{}
	for _, tag := range f.tags {
		copied := *tag
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeTagStore) Update(ctx context.Context, tag *domain.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tags[tag.ID]; !ok {
		return store.ErrTagNotFound
	}
	copied := *tag
	f.tags[tag.ID] = &copied
	return nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.User{}
	for _, user := range f.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeUserStore) Update(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

type fakeColumnStore struct {
	mu      sync.Mutex
	columns map[uuid.UUID]*domain.Column
}

func newFakeColumnStore() *fakeColumnStore {
	return &fakeColumnStore{columns: make(map[uuid.UUID]*domain.Column)}
}

func (f *fakeColumnStore) Create(ctx context.Context, column *domain.Column) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *column
	f.columns[column.ID] = &copied
	return nil
}

func (f *fakeColumnStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	column, ok := f.columns[id]
	if !ok {
		return nil, store.ErrColumnNotFound
	}
	copied := *column
	return &copied, nil
}

func (f *fakeColumnStore) List(ctx context.Context) ([]*domain.Column, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Column{}
	for _, column := range f.columns {
		copied := *column
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeColumnStore) Update(ctx context.Context, column *domain.Column) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.columns[column.ID]; !ok {
		return store.ErrColumnNotFound
	}
	copied := *column
	f.columns[column.ID] = &copied
	return nil
}

type fakeTaskStore struct {
	mu    sync.Mutex
	order []uuid.UUID
	tasks map[uuid.UUID]*domain.Task
	err   error
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func copyTask(task *domain.Task) *domain.Task {
	copied := *task
	copied.TagIDs = append([]uuid.UUID(nil), task.TagIDs...)
	copied.Tags = append([]domain.TagSnapshot(nil), task.Tags...)
	if task.Assignee != nil {
		assignee := *task.Assignee
		copied.Assignee = &assignee
	}
	if task.Column != nil {
		column := *task.Column
		copied.Column = &column
	}
	copied.Comments = append([]string(nil), task.Comments...)
	return &copied
}

func (f *fakeTaskStore) Create(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if err := task.Validate(); err != nil {
		return err
	}
	f.order = append(f.order, task.ID)
	f.tasks[task.ID] = copyTask(task)
	return nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return copyTask(task), nil
}

func (f *fakeTaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	out := []*domain.Task{}
	offset, limit := filter.Offset(), filter.Limit()
	for i, id := range f.order {
		if i < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, copyTask(f.tasks[id]))
	}
	return out, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	f.tasks[task.ID] = copyTask(task)
	return nil
}

func (f *fakeTaskStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

var errStoreDown = errors.New("store unavailable")
