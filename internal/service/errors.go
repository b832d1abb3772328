package service

import (
	"errors"

	"github.com/01moynul/inkwell-api/internal/store"
)

// Kind classifies a service failure. Handlers map it to an HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is the error type returned by every service method. Message is safe
// to show to API clients; Field names the offending input field, if any.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// fromStore translates a store failure. Duplicates become conflicts named
// after the field, missing rows become notFoundMsg and the rest are internal.
func fromStore(err error, notFoundMsg, internalMsg string) error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	var dup *store.DuplicateError
	switch {
	case errors.As(err, &dup):
		return &Error{Kind: KindConflict, Message: dup.Field + " must be unique", Field: dup.Field, Err: err}
	case errors.Is(err, store.ErrNotFound):
		return notFound(notFoundMsg)
	default:
		return internal(internalMsg, err)
	}
}
