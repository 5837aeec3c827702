package validation

import (
	"strings"

	"taskroll/internal/domain"
)

// Default task name length limits, used when no config is supplied.
const (
	DefaultNameMinLength = 1
	DefaultNameMaxLength = 255
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	minNameLength int
	maxNameLength int
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		minNameLength: DefaultNameMinLength,
		maxNameLength: DefaultNameMaxLength,
	}
}

// NewTaskValidatorWithLimits creates a task validator with custom name length limits
func NewTaskValidatorWithLimits(min, max int) *TaskValidator {
	return &TaskValidator{
		minNameLength: min,
		maxNameLength: max,
	}
}

// ValidateTaskName validates a task name for creation.
// The name is trimmed before any checks; an empty or whitespace-only name fails.
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if len(trimmed) < tv.minNameLength || len(trimmed) > tv.maxNameLength {
		validationError.AddInvalidLengthError("task_name", trimmed, tv.minNameLength, tv.maxNameLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePriority validates that a priority is one of the enumerated values
func (tv *TaskValidator) ValidatePriority(p domain.Priority) error {
	if !p.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", int(p), "must be high, medium or low")
		return validationError
	}
	return nil
}

// GetValidTaskName returns the trimmed task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}
