package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/internal/core/policy"
	"github.com/caronvincent/todo-burbanie/internal/core/ports"
)

type TaskService struct {
	taskRepository     ports.TaskRepository
	categoryRepository ports.CategoryRepository
}

func NewTaskService(taskRepository ports.TaskRepository, categoryRepository ports.CategoryRepository) *TaskService {
	return &TaskService{
		taskRepository:     taskRepository,
		categoryRepository: categoryRepository,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, principal domain.Principal, input domain.TaskInput) (domain.Task, error) {
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}
	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Create(ctx, policy.NewTaskFor(principal, input))
}

func (s *TaskService) GetTask(ctx context.Context, principal domain.Principal, id uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := policy.CanAccessTask(principal, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, principal domain.Principal, id uint64, input domain.TaskInput) (domain.Task, error) {
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	existing, err := s.GetTask(ctx, principal, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Update(ctx, policy.ApplyTaskUpdate(existing, input))
}

// DeleteTask succeeds when the task is already gone.
func (s *TaskService) DeleteTask(ctx context.Context, principal domain.Principal, id uint64) error {
	task, err := s.taskRepository.GetByID(ctx, id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := policy.CanAccessTask(principal, task); err != nil {
		return err
	}

	return s.taskRepository.Delete(ctx, id)
}

func (s *TaskService) SearchTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) ([]domain.Task, error) {
	scoped, err := policy.ScopeTaskSearch(principal, filter)
	if err != nil {
		return nil, err
	}
	return s.taskRepository.Search(ctx, scoped)
}

func (s *TaskService) ensureCategory(ctx context.Context, categoryID uint64) error {
	exists, err := s.categoryRepository.Exists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("check category %d: %w", categoryID, err)
	}
	if !exists {
		return fmt.Errorf("%w: %d", domain.ErrCategoryNotFound, categoryID)
	}
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
