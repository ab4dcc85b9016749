package services

import (
	"errors"
	"strings"

	"dealerhub/internal/core/domain"
	"dealerhub/internal/pkg/validator"

	"gorm.io/gorm"
)

// notFoundAs maps gorm's missing-row error onto a domain not-found error
func notFoundAs(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// duplicateAs maps a unique index violation onto a domain duplicate error
func duplicateAs(err, duplicate error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicate
	}
	return err
}

// validate trims the input's string fields in place, then runs struct tag
// validation and wraps failures as invalid input
func validate(input interface{}) error {
	validator.Normalize(input)
	if err := validator.Struct(input); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

// ValidationError carries a field specific message for a 400 response
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets callers match the domain category with errors.Is
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// trimPtr trims a patch value in place, leaving nil untouched
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
