package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeInvalid       ErrorCode = "INVALID"
	ErrCodeConflict      ErrorCode = "CONFLICT"
	ErrCodeNothingToUndo ErrorCode = "NOTHING_TO_UNDO"
	ErrCodeGone          ErrorCode = "GONE"
	ErrCodeInternal      ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Common domain errors. None of these are fatal: the caller reports them
// and the store/history state remains valid and unchanged.
var (
	ErrTaskNotFound = NewError(ErrCodeNotFound, "task not found")

	// ErrTaskAlreadyCompleted signals a complete request on a task whose
	// completed flag is already set. No history entry is recorded.
	ErrTaskAlreadyCompleted = NewError(ErrCodeConflict, "task already completed")

	// ErrNothingToUndo is the normal outcome of undoing with an empty
	// history, not a failure of the store.
	ErrNothingToUndo = NewError(ErrCodeNothingToUndo, "nothing to undo")

	// ErrUndoTargetMissing means the task an undo expected to touch has
	// vanished. The history entry is still consumed.
	ErrUndoTargetMissing = NewError(ErrCodeGone, "undo target no longer exists")

	ErrInvalidPayload = NewError(ErrCodeInvalid, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
