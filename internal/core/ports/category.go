package ports

import (
	"context"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	GetByID(ctx context.Context, id uint64) (domain.Category, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Update(ctx context.Context, category domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id uint64) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, principal domain.Principal, input domain.CategoryInput) (domain.Category, error)
	GetCategory(ctx context.Context, principal domain.Principal, id uint64) (domain.Category, error)
	UpdateCategory(ctx context.Context, principal domain.Principal, id uint64, input domain.CategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, principal domain.Principal, id uint64) error
}
