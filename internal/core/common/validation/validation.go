package validation

import (
	"fmt"
	"strings"

	errors "github.com/govflow/govflow/internal"
)

// Builder collects field-level validation failures so a request can report
// all of them in one response instead of failing on the first.
type Builder struct {
	errors []errors.ValidationError
}

func NewValidator() *Builder {
	return &Builder{errors: make([]errors.ValidationError, 0)}
}

func (b *Builder) Required(field, value string) *Builder {
	if strings.TrimSpace(value) == "" {
		b.errors = append(b.errors, errors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
			Code:    string(errors.ErrCodeValidationFailed),
		})
	}
	return b
}

func (b *Builder) MaxLen(field, value string, max int) *Builder {
	if len(value) > max {
		b.errors = append(b.errors, errors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, max),
			Code:    string(errors.ErrCodeValidationFailed),
		})
	}
	return b
}

func (b *Builder) OneOf(field, value string, allowed []string) *Builder {
	if value == "" {
		return b
	}
	for _, a := range allowed {
		if value == a {
			return b
		}
	}
	b.errors = append(b.errors, errors.ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
		Code:    string(errors.ErrCodeValidationFailed),
	})
	return b
}

// Validate returns nil when every rule passed, otherwise an AppError
// carrying all collected field failures.
func (b *Builder) Validate() error {
	if len(b.errors) == 0 {
		return nil
	}
	appErr := errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed)
	return appErr.WithDetails(errors.ValidationErrors{Errors: b.errors})
}
