package mapper

import (
	"time"

	"github.com/caronvincent/todo-burbanie/internal/adapter/http/dto"
	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:         task.ID,
		Name:       task.Name,
		Deadline:   FormatDeadline(task.Deadline),
		CategoryID: task.CategoryID,
		Author:     task.Author,
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	return item
}

// FormatDeadline drops seconds when they are zero, so "1970-01-01T00:00"
// round-trips unchanged.
func FormatDeadline(deadline time.Time) string {
	deadline = deadline.UTC().Truncate(time.Second)
	if deadline.Second() != 0 {
		return deadline.Format("2006-01-02T15:04:05")
	}
	return deadline.Format(dto.DeadlineLayout)
}
