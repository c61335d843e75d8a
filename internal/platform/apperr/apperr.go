// Package apperr defines the typed application errors shared by every feature.
// Usecases declare their sentinel errors with these constructors, and the HTTP layer
// maps the Kind to a status code in one place.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// KindInternal is an unexpected failure (database down, bug). It is the zero value
	// so that unclassified errors are treated as internal.
	KindInternal Kind = iota
	// KindValidation means the request was malformed or violated a business rule.
	KindValidation
	// KindUnauthorized means no usable credentials were presented.
	KindUnauthorized
	// KindForbidden means credentials were presented but are invalid or insufficient.
	KindForbidden
	// KindNotFound means the addressed resource does not exist.
	KindNotFound
	// KindConflict means the request collides with existing state (duplicates, references).
	KindConflict
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is an error with a Kind and a client-safe message.
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

// Is reports whether target is an *Error with the same kind and message. This lets a
// copy produced by Wrap still match the sentinel it was made from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Wrap returns a copy of e carrying cause as detail.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: cause}
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a KindValidation error.
func Validation(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

// Unauthorized creates a KindUnauthorized error.
func Unauthorized(format string, args ...any) *Error {
	return newError(KindUnauthorized, format, args...)
}

// Forbidden creates a KindForbidden error.
func Forbidden(format string, args ...any) *Error {
	return newError(KindForbidden, format, args...)
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

// Conflict creates a KindConflict error.
func Conflict(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

// Internal creates a KindInternal error.
func Internal(format string, args ...any) *Error {
	return newError(KindInternal, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message of the first *Error in err's chain.
// The second result is false when err carries no *Error.
func MessageOf(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Message, true
	}
	return "", false
}
