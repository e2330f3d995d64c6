package webhook

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, compare with errors.Is
var (
	ErrNotFound       = errors.New("Webhook not found")
	ErrInactive       = errors.New("Cannot test inactive webhook")
	ErrURLRequired    = errors.New("Webhook URL is required")
	ErrTestInProgress = errors.New("Webhook test already in progress")
)

// ValidationError reports every problem found in a form
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// PreconditionError is returned when a test cannot start
type PreconditionError struct {
	Err error
}

func (e *PreconditionError) Error() string {
	return e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

/* BackendError wraps a failed remote call during a CRUD operation
 * The message of the cause is what the user sees
 */
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Message returns the user-visible part of the error
func (e *BackendError) Message() string {
	return e.Err.Error()
}
