package service

import "fmt"

const msgMissingRequiredFields = "missing required fields"

// ValidationError reports malformed or missing ingestion input. It is the
// caller's fault and never worth retrying.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StoreError wraps a persistence or connectivity failure. No retry is
// attempted here; that is left to the caller.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
