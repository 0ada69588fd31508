package jsonvalue

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	// Element access errors
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrKeyNotFound     = errors.New("key not found")
	ErrNotContainer    = errors.New("value is not a container")

	// Bridge errors
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrInvalidYAML     = errors.New("invalid YAML document")
	ErrInvalidPath     = errors.New("invalid path format")
	ErrUnsupportedType = errors.New("unsupported Go type")
	ErrInvalidConfig   = errors.New("invalid configuration")

	// Limit-related errors
	ErrDepthLimit = errors.New("depth limit exceeded")
)

// ValueError represents a value-model error with essential context
type ValueError struct {
	Op      string `json:"op"`      // Operation that failed
	Path    string `json:"path"`    // Path or key where the error occurred
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *ValueError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("jsonvalue %s failed at '%s': %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("jsonvalue %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *ValueError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *ValueError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*ValueError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}
	return errors.Is(e.Err, target)
}

// newOperationError creates a ValueError for operation failures
func newOperationError(operation, message string, err error) error {
	return &ValueError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// newPathError creates a ValueError carrying the offending path or key
func newPathError(operation, path, message string, err error) error {
	return &ValueError{
		Op:      operation,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// newDepthLimitError creates a ValueError for nesting limit violations
func newDepthLimitError(operation string, actual, limit int) error {
	return &ValueError{
		Op:      operation,
		Message: fmt.Sprintf("depth %d exceeds limit %d", actual, limit),
		Err:     ErrDepthLimit,
	}
}
