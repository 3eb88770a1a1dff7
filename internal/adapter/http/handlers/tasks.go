package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caronvincent/todo-burbanie/internal/adapter/http/dto"
	"github.com/caronvincent/todo-burbanie/internal/adapter/http/mapper"
	"github.com/caronvincent/todo-burbanie/internal/adapter/http/validation"
	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/internal/core/ports"
	"github.com/caronvincent/todo-burbanie/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	input, ok := bindTaskInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), principal, input)
	if err != nil {
		// A dangling category reference makes the payload itself invalid.
		if errors.Is(err, domain.ErrCategoryNotFound) {
			writeError(c, http.StatusBadRequest, apierrors.MsgUnknownCategory)
			return
		}
		writeServiceError(c, err, errorMessages{
			invalid:   apierrors.MsgInvalidTaskPayload,
			forbidden: apierrors.MsgForbidden,
			fail:      apierrors.MsgFailCreateTask,
		})
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), principal, id)
	if err != nil {
		writeServiceError(c, err, errorMessages{
			invalid:   apierrors.MsgInvalidTaskPayload,
			forbidden: apierrors.MsgTaskForbidden,
			fail:      apierrors.MsgFailGetTask,
		})
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	input, ok := bindTaskInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), principal, id, input)
	if err != nil {
		writeServiceError(c, err, errorMessages{
			invalid:   apierrors.MsgInvalidTaskPayload,
			forbidden: apierrors.MsgTaskForbidden,
			fail:      apierrors.MsgFailUpdateTask,
		})
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), principal, id); err != nil {
		writeServiceError(c, err, errorMessages{
			invalid:   apierrors.MsgInvalidTaskPayload,
			forbidden: apierrors.MsgTaskForbidden,
			fail:      apierrors.MsgFailDeleteTask,
		})
		return
	}

	c.Status(http.StatusOK)
}

func (h *TaskHandler) SearchTasks(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	filter, err := validation.BuildTaskFilter(dto.TaskSearchQuery{
		Author:      queryPtr(c, "author"),
		Name:        queryPtr(c, "name"),
		Description: queryPtr(c, "description"),
		Deadline:    queryPtr(c, "deadline"),
		Category:    queryPtr(c, "category"),
	})
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSearchParams)
		return
	}

	tasks, err := h.taskService.SearchTasks(c.Request.Context(), principal, filter)
	if err != nil {
		writeServiceError(c, err, errorMessages{
			invalid:   apierrors.MsgInvalidSearchParams,
			forbidden: apierrors.MsgSearchByAuthorForbidden,
			fail:      apierrors.MsgFailSearchTasks,
		})
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func bindTaskInput(c *gin.Context) (domain.TaskInput, bool) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return domain.TaskInput{}, false
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return domain.TaskInput{}, false
	}

	return input, true
}

// queryPtr distinguishes an absent parameter (nil) from an empty one.
func queryPtr(c *gin.Context, key string) *string {
	value, exists := c.GetQuery(key)
	if !exists {
		return nil
	}
	return &value
}
