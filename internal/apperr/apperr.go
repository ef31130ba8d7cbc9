// Package apperr provides message-template errors shared across werk's
// packages
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with an optional format template and an
// underlying cause.
type Error struct {
	Cause   error
	Message string
	tmpl    string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was derived from the same error template as e.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.template() == t.template()
}

func (e *Error) template() string {
	if e.tmpl != "" {
		return e.tmpl
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted with args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		tmpl:    e.template(),
	}
}

// Wrap returns a copy of the error with err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		tmpl:    e.template(),
	}
}
