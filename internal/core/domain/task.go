package domain

import (
	"math"
	"time"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500

	// MaxID is the largest identity the SQL drivers accept as a parameter.
	MaxID uint64 = math.MaxInt64
)

type Task struct {
	ID          uint64
	Name        string
	Description *string
	Deadline    time.Time
	CategoryID  uint64
	Author      string
}

// TaskInput carries the client-writable fields of a task. Author is never
// part of it: it comes from the Principal.
type TaskInput struct {
	Name        string
	Description *string
	Deadline    time.Time
	CategoryID  uint64
}

// TaskFilter holds the optional search criteria. A nil field is not applied.
type TaskFilter struct {
	Author      *string
	Name        *string
	Description *string
	Deadline    *time.Time
	CategoryID  *uint64
}

func (in TaskInput) Validate() error {
	if err := validateName(in.Name); err != nil {
		return err
	}
	if err := validateDescription(in.Description); err != nil {
		return err
	}
	if in.Deadline.IsZero() {
		return &ValidationError{Field: "deadline", Reason: "is required"}
	}
	if in.CategoryID == 0 {
		return &ValidationError{Field: "categoryId", Reason: "is required"}
	}
	if in.CategoryID > MaxID {
		return &ValidationError{Field: "categoryId", Reason: "is out of range"}
	}
	return nil
}
