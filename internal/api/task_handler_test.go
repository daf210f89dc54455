package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the wire shape for decoding in assertions.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
}

func newTaskRouter(svc service.TaskService) http.Handler {
	h := NewTaskHandler(svc, nil)
	r := chi.NewRouter()
	r.Get("/tasks", h.ListTasks)
	r.Post("/tasks", h.CreateTask)
	r.Put("/tasks/{id}", h.UpdateTask)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func sampleTask(t *testing.T) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(
		"Ship the release", "Cut and tag v2", "https://example.com/release",
		time.Time{}, nil, uuid.New(), uuid.NullUUID{}, nil,
	)
	require.NoError(t, err)
	return task
}

func validTaskBody(assigneeID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"title":       "Ship the release",
		"description": "Cut and tag v2",
		"link":        "https://example.com/release",
		"assignee_id": assigneeID.String(),
	}
}

func TestListTasks_Success(t *testing.T) {
	svc := &fakeTaskService{tasks: []*domain.Task{sampleTask(t)}}
	router := newTaskRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var tasks []TaskResponse
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Ship the release", tasks[0].Title)
	// Absent collections serialize as empty arrays, never null.
	assert.NotNil(t, tasks[0].Tags)
	assert.NotNil(t, tasks[0].Comments)
}

func TestListTasks_EmptyPageIsEmptyArray(t *testing.T) {
	svc := &fakeTaskService{}
	router := newTaskRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"success":true}`, rec.Body.String())
}

func TestListTasks_QueryParamsParsed(t *testing.T) {
	svc := &fakeTaskService{}
	router := newTaskRouter(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/tasks?assignee=ann&column=Doing&tags=bug&page=2&perPage=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastFilter.Assignee)
	assert.Equal(t, "ann", *svc.lastFilter.Assignee)
	require.NotNil(t, svc.lastFilter.Column)
	assert.Equal(t, "Doing", *svc.lastFilter.Column)
	require.NotNil(t, svc.lastFilter.Tags)
	assert.Equal(t, "bug", *svc.lastFilter.Tags)
	assert.Equal(t, 2, svc.lastFilter.Page)
	assert.Equal(t, 5, svc.lastFilter.PerPage)
}

func TestListTasks_AbsentParamsStayNil(t *testing.T) {
	svc := &fakeTaskService{}
	router := newTaskRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Nil(t, svc.lastFilter.Assignee)
	assert.Nil(t, svc.lastFilter.Column)
	assert.Nil(t, svc.lastFilter.Tags)
	assert.Zero(t, svc.lastFilter.Page)
	assert.Zero(t, svc.lastFilter.PerPage)
}

func TestListTasks_ServiceError(t *testing.T) {
	svc := &fakeTaskService{err: errBoom}
	router := newTaskRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	// The raw error string never reaches the client.
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestCreateTask_Success(t *testing.T) {
	assigneeID := uuid.New()
	tagID := uuid.New()
	columnID := uuid.New()

	svc := &fakeTaskService{task: sampleTask(t)}
	router := newTaskRouter(svc)

	body := validTaskBody(assigneeID)
	body["tag_ids"] = []string{tagID.String()}
	body["column_id"] = columnID.String()
	body["due_date"] = "2026-09-15T00:00:00Z"
	body["comments"] = []string{"looks good"}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	// The handler translated the wire payload faithfully.
	assert.Equal(t, assigneeID, svc.lastParams.AssigneeID)
	assert.Equal(t, []uuid.UUID{tagID}, svc.lastParams.TagIDs)
	require.True(t, svc.lastParams.ColumnID.Valid)
	assert.Equal(t, columnID, svc.lastParams.ColumnID.UUID)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), svc.lastParams.DueDate)
	assert.Equal(t, []string{"looks good"}, svc.lastParams.Comments)
}

func TestCreateTask_MissingRequiredField(t *testing.T) {
	svc := &fakeTaskService{task: sampleTask(t)}
	router := newTaskRouter(svc)

	body := validTaskBody(uuid.New())
	delete(body, "title")
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, rec.Body.String(), "Title")

	// The service was never reached.
	assert.Zero(t, svc.lastParams)
}

func TestCreateTask_MalformedJSON(t *testing.T) {
	svc := &fakeTaskService{}
	router := newTaskRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}

func TestCreateTask_MalformedAssigneeID(t *testing.T) {
	svc := &fakeTaskService{}
	router := newTaskRouter(svc)

	body := validTaskBody(uuid.New())
	body["assignee_id"] = "not-a-uuid"
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTask_Success(t *testing.T) {
	task := sampleTask(t)
	svc := &fakeTaskService{task: task}
	router := newTaskRouter(svc)

	payload, err := json.Marshal(validTaskBody(uuid.New()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/tasks/"+task.ID.String(), bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, task.ID, svc.lastID)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
}

func TestUpdateTask_NotFound(t *testing.T) {
	svc := &fakeTaskService{err: service.ErrTaskNotFound}
	router := newTaskRouter(svc)

	payload, err := json.Marshal(validTaskBody(uuid.New()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/tasks/"+uuid.NewString(), bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, rec.Body.String(), "Task not found")
}

func TestUpdateTask_MalformedID(t *testing.T) {
	svc := &fakeTaskService{}
	router := newTaskRouter(svc)

	payload, err := json.Marshal(validTaskBody(uuid.New()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/tasks/42", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// The service was never reached.
	assert.Zero(t, svc.lastID)
}
