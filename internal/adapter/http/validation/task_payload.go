package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/caronvincent/todo-burbanie/internal/adapter/http/dto"
	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

var (
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidTaskPayload  = errors.New("invalid task payload")
	ErrInvalidSearchParams = errors.New("invalid search parameters")
)

// ParseID accepts decimal ids from 1 to domain.MaxID.
func ParseID(value string) (uint64, error) {
	id, err := strconv.ParseUint(value, 10, 63)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

var deadlineLayouts = []string{
	"2006-01-02T15:04:05",
	dto.DeadlineLayout,
}

// ParseDeadline reads an ISO local date-time with minute or second precision.
// The result is in UTC.
func ParseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range deadlineLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		// time.Parse tolerates a fraction after the seconds.
		if parsed.Nanosecond() != 0 {
			break
		}
		return parsed, nil
	}
	return time.Time{}, ErrInvalidTaskPayload
}

func BuildTaskInput(req dto.TaskRequest) (domain.TaskInput, error) {
	if req.CategoryID == nil {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	deadline, err := ParseDeadline(req.Deadline)
	if err != nil {
		return domain.TaskInput{}, err
	}

	return domain.TaskInput{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    deadline,
		CategoryID:  *req.CategoryID,
	}, nil
}

// BuildTaskFilter turns query parameters into a filter. Presence matters for
// author: an empty value still counts as an author filter. Empty deadline and
// category values are ignored.
func BuildTaskFilter(query dto.TaskSearchQuery) (domain.TaskFilter, error) {
	filter := domain.TaskFilter{
		Author:      query.Author,
		Name:        query.Name,
		Description: query.Description,
	}

	if query.Deadline != nil && strings.TrimSpace(*query.Deadline) != "" {
		deadline, err := ParseDeadline(*query.Deadline)
		if err != nil {
			return domain.TaskFilter{}, ErrInvalidSearchParams
		}
		filter.Deadline = &deadline
	}

	if query.Category != nil && strings.TrimSpace(*query.Category) != "" {
		categoryID, err := ParseID(strings.TrimSpace(*query.Category))
		if err != nil {
			return domain.TaskFilter{}, ErrInvalidSearchParams
		}
		filter.CategoryID = &categoryID
	}

	return filter, nil
}
