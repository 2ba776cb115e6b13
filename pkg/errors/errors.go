// Package errors provides standardized error handling for the cigen
// generators. It implements structured error types with proper wrapping
// following Go 1.20+ error handling practices.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidJobDefinition indicates a job definition that cannot
	// produce a well-formed record (empty version sequence, empty
	// architecture name).
	ErrInvalidJobDefinition = errors.New("invalid job definition")
)

// JobDefinitionError represents an error in a specific job definition
type JobDefinitionError struct {
	Job    string
	Reason string
	Err    error
}

func (e *JobDefinitionError) Error() string {
	if e.Job != "" {
		return fmt.Sprintf("job %s: %s: %v", e.Job, e.Reason, e.Err)
	}
	return fmt.Sprintf("job definition: %s: %v", e.Reason, e.Err)
}

func (e *JobDefinitionError) Unwrap() error {
	return e.Err
}

// NewJobDefinitionError creates a JobDefinitionError wrapping
// ErrInvalidJobDefinition
func NewJobDefinitionError(job, reason string) *JobDefinitionError {
	return &JobDefinitionError{
		Job:    job,
		Reason: reason,
		Err:    ErrInvalidJobDefinition,
	}
}

// IsInvalidJobDefinition checks if an error is an invalid job definition error
func IsInvalidJobDefinition(err error) bool {
	return errors.Is(err, ErrInvalidJobDefinition)
}
