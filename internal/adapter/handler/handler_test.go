package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/common"
	meetingDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/meeting"
	taskDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/repository"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/ai"
	meetingUsecase "github.com/johnquangdev/meeting-intelligence/internal/usecase/meeting"
	taskUsecase "github.com/johnquangdev/meeting-intelligence/internal/usecase/task"
	"github.com/johnquangdev/meeting-intelligence/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-intelligence/pkg/validator"
)

const standupJSON = "```json\n" +
	`{"title":"Standup","key_points":["Sprint on track"],"decisions":[],"action_items":[{"task":"Follow up with design","assignee":"Alex","priority":"medium"}]}` +
	"\n```"

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) Transcribe(_ context.Context, audio io.Reader, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, audio); err != nil {
		return "", err
	}
	return s.text, s.err
}

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateText(context.Context, string) (string, error) {
	return s.response, s.err
}

type testServer struct {
	e           *echo.Echo
	dir         string
	transcriber *stubTranscriber
	generator   *stubGenerator
}

type failingRemoveStore struct {
	storage.AudioStore
}

func (failingRemoveStore) Remove(context.Context, string) error {
	return fmt.Errorf("disk is read-only")
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithStore(t, nil)
}

// newTestServerWithStore wraps the temp-dir store when wrap is non-nil
func newTestServerWithStore(t *testing.T, wrap func(storage.AudioStore) storage.AudioStore) *testServer {
	t.Helper()
	log := zap.NewNop()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
		},
		Server: config.ServerConfig{Environment: "production"},
	}
	db, err := database.New(cfg, log)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, cfg.Database.Driver, log))
	t.Cleanup(func() { database.Close(db) })

	dir := t.TempDir()
	local, err := storage.NewLocalStore(dir)
	require.NoError(t, err)
	var store storage.AudioStore = local
	if wrap != nil {
		store = wrap(local)
	}

	transcriber := &stubTranscriber{text: "Alex will follow up with design."}
	generator := &stubGenerator{response: standupJSON}

	meetingRepo := repository.NewMeetingRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	meetingService := meetingUsecase.NewMeetingService(
		meetingRepo, actionItemRepo, store, ai.NewService(transcriber, generator, log), 64, log,
	)
	taskService := taskUsecase.NewTaskService(actionItemRepo, log)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.Pre(middleware.RemoveTrailingSlash())
	NewRouter(
		NewHealthHandler(store, false, log),
		NewMeetingHandler(meetingService, 64, log),
		NewTaskHandler(taskService, log),
	).Setup(e)

	return &testServer{e: e, dir: dir, transcriber: transcriber, generator: generator}
}

func (s *testServer) do(t *testing.T, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) upload(t *testing.T, filename, title string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if title != "" {
		require.NoError(t, w.WriteField("title", title))
	}
	require.NoError(t, w.Close())
	return s.do(t, http.MethodPost, "/api/meetings", &buf, w.FormDataContentType())
}

func (s *testServer) patchTask(t *testing.T, id uint, body string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", id), strings.NewReader(body), echo.MIMEApplicationJSON)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type summaryBody struct {
	Title       string   `json:"title"`
	KeyPoints   []string `json:"key_points"`
	ActionItems []struct {
		Task string `json:"task"`
	} `json:"action_items"`
	Error string `json:"error"`
}

func TestRootAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	root := decode[common.RootResponse](t, rec)
	assert.Equal(t, "healthy", root.Status)
	assert.Equal(t, "1.0.0", root.Version)

	rec = s.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[common.HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.False(t, health.GeminiConfigured)
	assert.Equal(t, s.dir, health.UploadDir)
	assert.True(t, health.UploadDirExists)
}

func TestUploadStandupEndToEnd(t *testing.T) {
	s := newTestServer(t)

	rec := s.upload(t, "standup.mp3", "Weekly sync", []byte("ID3 audio bytes"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	m := decode[meetingDTO.MeetingResponse](t, rec)
	assert.Equal(t, "Weekly sync", m.Title)
	assert.Equal(t, "completed", m.Status)
	require.NotNil(t, m.Transcription)
	assert.Equal(t, "Alex will follow up with design.", *m.Transcription)
	require.NotNil(t, m.AudioFilename)
	assert.Equal(t, "standup.mp3", *m.AudioFilename)
	assert.NotContains(t, rec.Body.String(), "audio_path")

	var summary summaryBody
	require.NoError(t, json.Unmarshal(m.Summary, &summary))
	assert.Equal(t, "Standup", summary.Title)
	assert.Equal(t, []string{"Sprint on track"}, summary.KeyPoints)
	require.Len(t, summary.ActionItems, 1)

	_, err := os.Stat(filepath.Join(s.dir, fmt.Sprintf("meeting_%d.mp3", m.ID)))
	require.NoError(t, err)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/meetings/%d/actions", m.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode[[]taskDTO.ActionItemResponse](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "Follow up with design", items[0].Description)
	require.NotNil(t, items[0].Assignee)
	assert.Equal(t, "Alex", *items[0].Assignee)
	assert.Equal(t, "medium", items[0].Priority)
	assert.Equal(t, "pending", items[0].Status)
	assert.Nil(t, items[0].DueDate)

	rec = s.do(t, http.MethodGet, "/api/meetings", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]meetingDTO.MeetingResponse](t, rec), 1)
}

func TestUploadRejections(t *testing.T) {
	s := newTestServer(t)

	rec := s.upload(t, "notes.txt", "", []byte("hello"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[common.ErrorResponse](t, rec)
	assert.EqualValues(t, errors.ErrorCode_UPLOAD_INVALID_FILE_TYPE, body.Code)
	assert.Equal(t, "Invalid file type. Allowed: .m4a, .mp3, .mp4, .ogg, .wav, .webm", body.Message)

	rec = s.upload(t, "", "title only", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, errors.ErrorCode_UPLOAD_MISSING_FILE, decode[common.ErrorResponse](t, rec).Code)

	rec = s.upload(t, "long.wav", "", bytes.Repeat([]byte("x"), 65))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "64", decode[common.ErrorResponse](t, rec).Details["max_bytes"])

	rec = s.do(t, http.MethodGet, "/api/meetings", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestUploadFailureIsRecorded(t *testing.T) {
	s := newTestServer(t)
	s.generator.err = fmt.Errorf("quota exceeded")

	rec := s.upload(t, "call.m4a", "", []byte("audio"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[common.ErrorResponse](t, rec)
	assert.EqualValues(t, errors.ErrorCode_PROCESSING_FAILED, body.Code)
	assert.Contains(t, body.Info, "quota exceeded")
	require.NotEmpty(t, body.Details["meeting_id"])

	rec = s.do(t, http.MethodGet, "/api/meetings/"+body.Details["meeting_id"], nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	m := decode[meetingDTO.MeetingResponse](t, rec)
	assert.Equal(t, "failed", m.Status)
	require.NotNil(t, m.Transcription)

	var summary summaryBody
	require.NoError(t, json.Unmarshal(m.Summary, &summary))
	assert.Contains(t, summary.Error, "quota exceeded")

	_, err := os.Stat(filepath.Join(s.dir, fmt.Sprintf("meeting_%d.m4a", m.ID)))
	assert.NoError(t, err)
}

func TestMeetingReadErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"missing meeting", http.MethodGet, "/api/meetings/999", http.StatusNotFound},
		{"non numeric id", http.MethodGet, "/api/meetings/abc", http.StatusBadRequest},
		{"missing actions", http.MethodGet, "/api/meetings/999/actions", http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/api/meetings/999", http.StatusNotFound},
		{"limit zero", http.MethodGet, "/api/meetings?limit=0", http.StatusBadRequest},
		{"limit too big", http.MethodGet, "/api/meetings?limit=1001", http.StatusBadRequest},
		{"negative skip", http.MethodGet, "/api/tasks?skip=-1", http.StatusBadRequest},
		{"non numeric limit", http.MethodGet, "/api/tasks?limit=ten", http.StatusBadRequest},
		{"missing task", http.MethodGet, "/api/tasks/42", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.target, nil, "")
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestTaskPatchAndDelete(t *testing.T) {
	s := newTestServer(t)
	rec := s.upload(t, "standup.webm", "", []byte("audio"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/tasks?status=pending", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]taskDTO.ActionItemResponse](t, rec)
	require.Len(t, tasks, 1)
	id := tasks[0].ID

	rec = s.patchTask(t, id, `{"status":"done"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[taskDTO.ActionItemResponse](t, rec)
	assert.Equal(t, "done", updated.Status)
	assert.Equal(t, "Follow up with design", updated.Description)
	require.NotNil(t, updated.Assignee)
	assert.Equal(t, "Alex", *updated.Assignee)

	rec = s.patchTask(t, id, `{"assignee":null,"due_date":"2024-06-30"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated = decode[taskDTO.ActionItemResponse](t, rec)
	assert.Nil(t, updated.Assignee)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, "2024-06-30", *updated.DueDate)
	assert.Equal(t, "done", updated.Status)

	rec = s.patchTask(t, id, `{"description":null}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.patchTask(t, id, `{"due_date":"30/06/2024"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.patchTask(t, id, `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.patchTask(t, 999, `{"status":"done"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/tasks?status=pending", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]taskDTO.ActionItemResponse](t, rec))

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Task deleted successfully", decode[common.MessageResponse](t, rec).Message)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMeetingRemovesEverything(t *testing.T) {
	s := newTestServer(t)
	rec := s.upload(t, "standup.ogg", "", []byte("audio"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	m := decode[meetingDTO.MeetingResponse](t, rec)
	audio := filepath.Join(s.dir, fmt.Sprintf("meeting_%d.ogg", m.ID))
	_, err := os.Stat(audio)
	require.NoError(t, err)

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/api/meetings/%d", m.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Meeting deleted successfully", decode[common.MessageResponse](t, rec).Message)

	_, err = os.Stat(audio)
	assert.True(t, os.IsNotExist(err))

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/meetings/%d", m.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/tasks", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]taskDTO.ActionItemResponse](t, rec))
}

func TestTrailingSlashRoutes(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "standup.mp3")
	require.NoError(t, err)
	_, err = part.Write([]byte("audio"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := s.do(t, http.MethodPost, "/api/meetings/", &buf, w.FormDataContentType())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "completed", decode[meetingDTO.MeetingResponse](t, rec).Status)

	rec = s.do(t, http.MethodGet, "/api/meetings/?limit=5", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]meetingDTO.MeetingResponse](t, rec), 1)

	rec = s.do(t, http.MethodGet, "/api/tasks/?status=pending", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]taskDTO.ActionItemResponse](t, rec), 1)

	rec = s.do(t, http.MethodGet, "/api/tasks/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]taskDTO.ActionItemResponse](t, rec), 1)
}

func TestDeleteMeetingStorageFailure(t *testing.T) {
	s := newTestServerWithStore(t, func(inner storage.AudioStore) storage.AudioStore {
		return failingRemoveStore{AudioStore: inner}
	})
	rec := s.upload(t, "standup.wav", "", []byte("audio"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	m := decode[meetingDTO.MeetingResponse](t, rec)

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/api/meetings/%d", m.ID), nil, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[common.ErrorResponse](t, rec)
	assert.EqualValues(t, errors.ErrorCode_INTEGRATION_STORAGE_FAILED, body.Code)
	assert.Contains(t, body.Info, "disk is read-only")

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/meetings/%d", m.ID), nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTaskPriorityLength(t *testing.T) {
	s := newTestServer(t)
	rec := s.upload(t, "standup.ogg", "", []byte("audio"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/tasks", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]taskDTO.ActionItemResponse](t, rec)
	require.Len(t, tasks, 1)
	id := tasks[0].ID

	wide := strings.Repeat("p", 50)
	rec = s.patchTask(t, id, fmt.Sprintf(`{"priority":%q}`, wide))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, wide, decode[taskDTO.ActionItemResponse](t, rec).Priority)

	rec = s.patchTask(t, id, fmt.Sprintf(`{"priority":%q}`, wide+"p"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
