package validation

import (
	"github.com/caronvincent/todo-burbanie/internal/adapter/http/dto"
	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

func BuildCategoryInput(req dto.CategoryRequest) domain.CategoryInput {
	return domain.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}
}
