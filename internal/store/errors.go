package store

import (
	"errors"
	"fmt"
)

// Kind classifies a store failure.
type Kind int

const (
	EmptyInput Kind = iota + 1
	DuplicateTask
	TaskNotFound
	InvalidTimeFormat
	CorruptFile
	IOError
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case DuplicateTask:
		return "duplicate task"
	case TaskNotFound:
		return "task not found"
	case InvalidTimeFormat:
		return "invalid time format"
	case CorruptFile:
		return "corrupt file"
	case IOError:
		return "i/o error"
	default:
		return "unknown"
	}
}

// Error is returned by every failing store operation.
type Error struct {
	Kind Kind
	Task string // task text the operation was about, if any
	Err  error  // underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Task != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Task)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns a short user-facing description of the failure.
func (e *Error) Message() string {
	switch e.Kind {
	case EmptyInput:
		return "Task text cannot be empty"
	case DuplicateTask:
		return "This task is already in the list"
	case TaskNotFound:
		return "Task not found"
	case InvalidTimeFormat:
		return "Reminder must be HH:MM (24-hour)"
	case CorruptFile:
		return "Task file is corrupt; starting with an empty list"
	case IOError:
		return "Could not save tasks; changes are kept in memory"
	default:
		return e.Error()
	}
}

// IsKind reports whether err is a store *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// AsError checks if an error is a store *Error and returns it.
func AsError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}

func newError(kind Kind, task string, err error) *Error {
	return &Error{Kind: kind, Task: task, Err: err}
}
