package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caronvincent/todo-burbanie/internal/app/service"
	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

func newTaskService() (*service.TaskService, *taskRepositoryMock, *categoryRepositoryMock) {
	tasks := new(taskRepositoryMock)
	categories := new(categoryRepositoryMock)
	return service.NewTaskService(tasks, categories), tasks, categories
}

func aliceTask() domain.Task {
	return domain.Task{ID: 1, Name: "Report", Deadline: epoch, CategoryID: 1, Author: "alice"}
}

func TestTaskService_CreateTask_ForcesAuthor(t *testing.T) {
	svc, tasks, categories := newTaskService()
	categories.On("Exists", mock.Anything, uint64(1)).Return(true, nil).Once()
	tasks.On("Create", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.Author == "alice" && task.Name == "Report" && task.ID == 0
	})).Return(aliceTask(), nil).Once()

	got, err := svc.CreateTask(context.Background(), alice, domain.TaskInput{Name: "Report", Deadline: epoch, CategoryID: 1})
	require.NoError(t, err)
	require.Equal(t, "alice", got.Author)
	require.Equal(t, uint64(1), got.ID)
	tasks.AssertExpectations(t)
	categories.AssertExpectations(t)
}

func TestTaskService_CreateTask_UnknownCategory(t *testing.T) {
	svc, tasks, categories := newTaskService()
	categories.On("Exists", mock.Anything, uint64(42)).Return(false, nil).Once()

	_, err := svc.CreateTask(context.Background(), alice, domain.TaskInput{Name: "Report", Deadline: epoch, CategoryID: 42})
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
	tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_CreateTask_InvalidInput(t *testing.T) {
	svc, tasks, categories := newTaskService()

	_, err := svc.CreateTask(context.Background(), alice, domain.TaskInput{Name: "", Deadline: epoch, CategoryID: 1})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	categories.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_GetTask(t *testing.T) {
	tests := []struct {
		name      string
		principal domain.Principal
		wantErr   error
	}{
		{name: "owner", principal: alice},
		{name: "admin", principal: admin},
		{name: "other user", principal: bob, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tasks, _ := newTaskService()
			tasks.On("GetByID", mock.Anything, uint64(1)).Return(aliceTask(), nil).Once()

			got, err := svc.GetTask(context.Background(), tt.principal, 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, uint64(1), got.ID)
		})
	}
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	svc, tasks, _ := newTaskService()
	tasks.On("GetByID", mock.Anything, uint64(9)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	_, err := svc.GetTask(context.Background(), bob, 9)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	require.NotErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskService_UpdateTask_KeepsAuthor(t *testing.T) {
	svc, tasks, categories := newTaskService()
	tasks.On("GetByID", mock.Anything, uint64(1)).Return(aliceTask(), nil).Once()
	categories.On("Exists", mock.Anything, uint64(2)).Return(true, nil).Once()
	tasks.On("Update", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.ID == 1 && task.Author == "alice" && task.Name == "Renamed" && task.CategoryID == 2
	})).Return(domain.Task{ID: 1, Name: "Renamed", CategoryID: 2, Author: "alice", Deadline: epoch}, nil).Once()

	got, err := svc.UpdateTask(context.Background(), admin, 1, domain.TaskInput{
		Name:        "Renamed",
		Description: strPtr("by admin"),
		Deadline:    epoch,
		CategoryID:  2,
	})
	require.NoError(t, err)
	require.Equal(t, "alice", got.Author)
	tasks.AssertExpectations(t)
}

func TestTaskService_UpdateTask_Forbidden(t *testing.T) {
	svc, tasks, categories := newTaskService()
	tasks.On("GetByID", mock.Anything, uint64(1)).Return(aliceTask(), nil).Once()

	_, err := svc.UpdateTask(context.Background(), bob, 1, domain.TaskInput{Name: "x", Deadline: epoch, CategoryID: 1})
	require.ErrorIs(t, err, domain.ErrForbidden)
	categories.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_UpdateTask_UnknownCategory(t *testing.T) {
	svc, tasks, categories := newTaskService()
	tasks.On("GetByID", mock.Anything, uint64(1)).Return(aliceTask(), nil).Once()
	categories.On("Exists", mock.Anything, uint64(5)).Return(false, nil).Once()

	_, err := svc.UpdateTask(context.Background(), alice, 1, domain.TaskInput{Name: "x", Deadline: epoch, CategoryID: 5})
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_DeleteTask(t *testing.T) {
	t.Run("missing task is a no-op", func(t *testing.T) {
		svc, tasks, _ := newTaskService()
		tasks.On("GetByID", mock.Anything, uint64(3)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

		require.NoError(t, svc.DeleteTask(context.Background(), bob, 3))
		tasks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		svc, tasks, _ := newTaskService()
		tasks.On("GetByID", mock.Anything, uint64(1)).Return(aliceTask(), nil).Once()

		require.ErrorIs(t, svc.DeleteTask(context.Background(), bob, 1), domain.ErrForbidden)
		tasks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("owner deletes", func(t *testing.T) {
		svc, tasks, _ := newTaskService()
		tasks.On("GetByID", mock.Anything, uint64(1)).Return(aliceTask(), nil).Once()
		tasks.On("Delete", mock.Anything, uint64(1)).Return(nil).Once()

		require.NoError(t, svc.DeleteTask(context.Background(), alice, 1))
		tasks.AssertExpectations(t)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		svc, tasks, _ := newTaskService()
		tasks.On("GetByID", mock.Anything, uint64(1)).Return(domain.Task{}, errors.New("db is down")).Once()

		require.EqualError(t, svc.DeleteTask(context.Background(), admin, 1), "db is down")
	})
}

func TestTaskService_SearchTasks(t *testing.T) {
	t.Run("user search is pinned to the caller", func(t *testing.T) {
		svc, tasks, _ := newTaskService()
		tasks.On("Search", mock.Anything, mock.MatchedBy(func(f domain.TaskFilter) bool {
			return f.Author != nil && *f.Author == "alice" && f.Name != nil && *f.Name == "Rep"
		})).Return([]domain.Task{aliceTask()}, nil).Once()

		got, err := svc.SearchTasks(context.Background(), alice, domain.TaskFilter{Name: strPtr("Rep")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		tasks.AssertExpectations(t)
	})

	t.Run("user with author filter is forbidden", func(t *testing.T) {
		svc, tasks, _ := newTaskService()

		_, err := svc.SearchTasks(context.Background(), alice, domain.TaskFilter{Author: strPtr("alice")})
		require.ErrorIs(t, err, domain.ErrForbidden)
		tasks.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("admin without filters sees everything", func(t *testing.T) {
		svc, tasks, _ := newTaskService()
		tasks.On("Search", mock.Anything, domain.TaskFilter{}).Return([]domain.Task{aliceTask(), {ID: 2, Author: "bob"}}, nil).Once()

		got, err := svc.SearchTasks(context.Background(), admin, domain.TaskFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}
