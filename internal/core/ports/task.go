package ports

import (
	"context"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
	Search(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, principal domain.Principal, input domain.TaskInput) (domain.Task, error)
	GetTask(ctx context.Context, principal domain.Principal, id uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, principal domain.Principal, id uint64, input domain.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, principal domain.Principal, id uint64) error
	SearchTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) ([]domain.Task, error)
}
