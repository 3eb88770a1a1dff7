package mapper

import (
	"github.com/caronvincent/todo-burbanie/internal/adapter/http/dto"
	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	item := dto.CategoryItem{
		ID:   category.ID,
		Name: category.Name,
	}

	if category.Description != nil {
		value := *category.Description
		item.Description = &value
	}

	return item
}
