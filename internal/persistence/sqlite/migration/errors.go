package migration

import (
	"errors"
	"fmt"
)

// ErrMigrationFailed marks failures during step execution.
var ErrMigrationFailed = errors.New("migration failed")

// StepError carries the context of a failed migration step.
type StepError struct {
	Version   int
	Operation string
	Err       error
}

// NewStepError wraps err with the step version and the operation that failed.
func NewStepError(version int, operation string, err error) *StepError {
	return &StepError{Version: version, Operation: operation, Err: err}
}

// Error implements the error interface.
func (e *StepError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("migration step to v%d: %s: %v", e.Version, e.Operation, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
