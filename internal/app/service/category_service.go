package service

import (
	"context"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/internal/core/policy"
	"github.com/caronvincent/todo-burbanie/internal/core/ports"
)

// CategoryService has no ownership rules: reads are open to any
// authenticated caller and every mutation needs the admin role.
type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) CreateCategory(ctx context.Context, principal domain.Principal, input domain.CategoryInput) (domain.Category, error) {
	if err := policy.RequireAdmin(principal); err != nil {
		return domain.Category{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Category{}, err
	}

	return s.categoryRepository.Create(ctx, domain.Category{
		Name:        input.Name,
		Description: input.Description,
	})
}

func (s *CategoryService) GetCategory(ctx context.Context, _ domain.Principal, id uint64) (domain.Category, error) {
	return s.categoryRepository.GetByID(ctx, id)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, principal domain.Principal, id uint64, input domain.CategoryInput) (domain.Category, error) {
	if err := policy.RequireAdmin(principal); err != nil {
		return domain.Category{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Category{}, err
	}

	category, err := s.categoryRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}
	category.Name = input.Name
	category.Description = input.Description

	return s.categoryRepository.Update(ctx, category)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, principal domain.Principal, id uint64) error {
	if err := policy.RequireAdmin(principal); err != nil {
		return err
	}
	return s.categoryRepository.Delete(ctx, id)
}

var _ ports.CategoryService = (*CategoryService)(nil)
