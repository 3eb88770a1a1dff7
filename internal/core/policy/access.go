// Package policy decides what a Principal may see or change. It holds no
// state and never touches storage: callers fetch the records and ask.
package policy

import (
	"fmt"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

// RequireAdmin guards every category mutation.
func RequireAdmin(principal domain.Principal) error {
	if !principal.IsAdmin() {
		return fmt.Errorf("%w: administrator role required", domain.ErrForbidden)
	}
	return nil
}

// CanAccessTask applies the ownership rule used by read, update and delete.
func CanAccessTask(principal domain.Principal, task domain.Task) error {
	if principal.IsAdmin() || task.Author == principal.Username {
		return nil
	}
	return fmt.Errorf("%w: task %d belongs to another user", domain.ErrForbidden, task.ID)
}

// ScopeTaskSearch returns the filter that may actually be run for principal.
// Administrators get their filter back unchanged. Anyone else is rejected
// when they name an author, even their own, and is otherwise pinned to
// their own tasks.
func ScopeTaskSearch(principal domain.Principal, filter domain.TaskFilter) (domain.TaskFilter, error) {
	if principal.IsAdmin() {
		return filter, nil
	}
	if filter.Author != nil {
		return domain.TaskFilter{}, fmt.Errorf("%w: only administrators may search by author", domain.ErrForbidden)
	}
	author := principal.Username
	filter.Author = &author
	return filter, nil
}

// NewTaskFor builds the record to persist for a creation request. The author
// always comes from the principal.
func NewTaskFor(principal domain.Principal, input domain.TaskInput) domain.Task {
	return domain.Task{
		Name:        input.Name,
		Description: input.Description,
		Deadline:    input.Deadline,
		CategoryID:  input.CategoryID,
		Author:      principal.Username,
	}
}

// ApplyTaskUpdate overwrites the client-writable fields of existing. ID and
// Author are carried over untouched.
func ApplyTaskUpdate(existing domain.Task, input domain.TaskInput) domain.Task {
	existing.Name = input.Name
	existing.Description = input.Description
	existing.Deadline = input.Deadline
	existing.CategoryID = input.CategoryID
	return existing
}
