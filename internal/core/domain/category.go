package domain

import (
	"strings"
	"unicode/utf8"
)

type Category struct {
	ID          uint64
	Name        string
	Description *string
}

type CategoryInput struct {
	Name        string
	Description *string
}

func (in CategoryInput) Validate() error {
	if err := validateName(in.Name); err != nil {
		return err
	}
	return validateDescription(in.Description)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be blank"}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return &ValidationError{Field: "name", Reason: "is too long"}
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Reason: "is too long"}
	}
	return nil
}
