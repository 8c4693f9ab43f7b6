// Package consoleerrors provides the wrapped error type shared by use cases.
package consoleerrors

import (
	"errors"
	"fmt"
	"strings"
)

// InternalError records where an error happened and what the caller may be
// told about it. Message is safe to return to API clients.
type InternalError struct {
	File          string
	Function      string
	Call          string
	Message       string
	OriginalError error
}

// CreateConsoleError returns an InternalError tagged with the file (or
// component) it belongs to.
func CreateConsoleError(file string) InternalError {
	return InternalError{
		File: file,
	}
}

func (e InternalError) Error() string {
	parts := []string{e.File}

	if e.Function != "" {
		parts = append(parts, e.Function)
	}

	if e.Call != "" {
		parts = append(parts, e.Call)
	}

	msg := strings.Join(parts, " - ")

	if e.OriginalError != nil {
		return fmt.Sprintf("%s: %v", msg, e.OriginalError)
	}

	if e.Message != "" {
		return fmt.Sprintf("%s: %s", msg, e.Message)
	}

	return msg
}

// Unwrap exposes the original error to errors.Is / errors.As.
func (e InternalError) Unwrap() error {
	return e.OriginalError
}

// Wrap returns a copy of e annotated with the failing function and call.
func (e InternalError) Wrap(function, call string, err error) InternalError {
	e.Function = function
	e.Call = call
	e.OriginalError = err

	return e
}

// WrapWithMessage is Wrap with a client-facing message.
func (e InternalError) WrapWithMessage(function, call, message string, err error) InternalError {
	e = e.Wrap(function, call, err)
	e.Message = message

	return e
}

// FriendlyMessage returns Message, falling back to the message of a wrapped
// InternalError.
func (e InternalError) FriendlyMessage() string {
	if e.Message != "" {
		return e.Message
	}

	var inner InternalError
	if e.OriginalError != nil && errors.As(e.OriginalError, &inner) {
		return inner.FriendlyMessage()
	}

	return ""
}
