package store

import "fmt"

// ValidationError reports malformed or out-of-range input. Nothing was
// written when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports a uniqueness violation, e.g. an anon token
// collision. The request may be retried with a fresh token.
type ConflictError struct {
	Err error
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Err.Error()
}

func (e *ConflictError) Unwrap() error { return e.Err }

// StorageError wraps a database or transaction fault. It is fatal for the
// request and is not retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }
