package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caronvincent/todo-burbanie/internal/adapter/http/dto"
	"github.com/caronvincent/todo-burbanie/internal/adapter/http/mapper"
	"github.com/caronvincent/todo-burbanie/internal/adapter/http/validation"
	"github.com/caronvincent/todo-burbanie/internal/core/ports"
	"github.com/caronvincent/todo-burbanie/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), principal, validation.BuildCategoryInput(req))
	if err != nil {
		writeServiceError(c, err, errorMessages{
			invalid:   apierrors.MsgInvalidCategoryPayload,
			forbidden: apierrors.MsgForbidden,
			fail:      apierrors.MsgFailCreateCategory,
		})
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), principal, id)
	if err != nil {
		writeServiceError(c, err, errorMessages{
			invalid:   apierrors.MsgInvalidCategoryPayload,
			forbidden: apierrors.MsgForbidden,
			fail:      apierrors.MsgFailGetCategory,
		})
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), principal, id, validation.BuildCategoryInput(req))
	if err != nil {
		writeServiceError(c, err, errorMessages{
			invalid:   apierrors.MsgInvalidCategoryPayload,
			forbidden: apierrors.MsgForbidden,
			fail:      apierrors.MsgFailUpdateCategory,
		})
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

// DeleteCategory answers 200 whether or not the category existed.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), principal, id); err != nil {
		writeServiceError(c, err, errorMessages{
			invalid:   apierrors.MsgInvalidCategoryPayload,
			forbidden: apierrors.MsgForbidden,
			fail:      apierrors.MsgFailDeleteCategory,
		})
		return
	}

	c.Status(http.StatusOK)
}
