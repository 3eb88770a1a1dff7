package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caronvincent/todo-burbanie/internal/adapter/http/middleware"
	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/pkg/apierrors"
	"github.com/caronvincent/todo-burbanie/pkg/translator"
)

var (
	alice = domain.Principal{Username: "alice", Roles: []domain.Role{domain.RoleUser}}
	admin = domain.Principal{Username: "admin", Roles: []domain.Role{domain.RoleUser, domain.RoleAdmin}}
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, principal domain.Principal, input domain.TaskInput) (domain.Task, error) {
	args := m.Called(ctx, principal, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, principal domain.Principal, id uint64) (domain.Task, error) {
	args := m.Called(ctx, principal, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, principal domain.Principal, id uint64, input domain.TaskInput) (domain.Task, error) {
	args := m.Called(ctx, principal, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, principal domain.Principal, id uint64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func (m *taskServiceMock) SearchTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, principal, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, principal domain.Principal, input domain.CategoryInput) (domain.Category, error) {
	args := m.Called(ctx, principal, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, principal domain.Principal, id uint64) (domain.Category, error) {
	args := m.Called(ctx, principal, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) UpdateCategory(ctx context.Context, principal domain.Principal, id uint64, input domain.CategoryInput) (domain.Category, error) {
	args := m.Called(ctx, principal, id, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, principal domain.Principal, id uint64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

// newRouter mounts a single handler behind a fixed principal.
func newRouter(principal domain.Principal, method, path string, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Handle(method, path, middleware.LanguageMiddleware(), middleware.SetPrincipal(principal), handler)
	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, code, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
}

func strPtr(value string) *string {
	return &value
}
