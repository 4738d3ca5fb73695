package utils

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid input")
)

// clientError carries a message meant for the API caller next to one of the
// sentinel errors above.
type clientError struct {
	kind error
	msg  string
}

func (e *clientError) Error() string { return e.msg }
func (e *clientError) Unwrap() error { return e.kind }

func NotFound(format string, args ...any) error {
	return &clientError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &clientError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func Invalid(format string, args ...any) error {
	return &clientError{kind: ErrInvalid, msg: fmt.Sprintf(format, args...)}
}

// Message returns the caller-facing text of err.
func Message(err error) string {
	var ce *clientError
	if errors.As(err, &ce) {
		return ce.msg
	}
	return err.Error()
}
