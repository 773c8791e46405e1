package apperror

import (
	"errors"
	"fmt"
)

// Error is a classified failure with a message that is safe to show to clients
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies err, keeping it in the chain
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewNotFound(message string) *Error {
	return New(NotFound, message)
}

func NewConflict(message string) *Error {
	return New(Conflict, message)
}

// NewValidation builds a Validation error whose message is the validator's output
func NewValidation(err error) *Error {
	return &Error{Kind: Validation, Message: err.Error()}
}

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, Internal for anything unclassified
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return Internal
}

/* Message returns what a client may see for err
 * Internal errors never expose their detail, fallback is returned instead
 */
func Message(err error, fallback string) string {
	appErr, ok := As(err)
	if !ok || appErr.Kind == Internal {
		return fallback
	}
	return appErr.Message
}
