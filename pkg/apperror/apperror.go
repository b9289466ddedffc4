// Package apperror defines the closed error taxonomy of the data layer.
// Repositories and use cases only ever surface these four kinds; raw
// storage faults are wrapped as Infrastructure instead of leaking driver
// errors to callers.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error.
type Kind int

const (
	// KindUnknown is the zero value; treated as Infrastructure when mapped.
	KindUnknown Kind = iota
	// KindNotFound — update/reference-resolution target does not exist.
	KindNotFound
	// KindValidation — a referenced related id could not be resolved, or
	// domain validation failed.
	KindValidation
	// KindTypeMismatch — a filter of the wrong variant reached a store.
	KindTypeMismatch
	// KindInfrastructure — unexpected storage or transport fault.
	KindInfrastructure
)

// Error is a typed, inspectable error value.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Validation builds a KindValidation error.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// TypeMismatch builds a KindTypeMismatch error.
func TypeMismatch(format string, args ...any) *Error {
	return &Error{Kind: KindTypeMismatch, Msg: fmt.Sprintf(format, args...)}
}

// Infrastructure wraps an unexpected storage fault.
func Infrastructure(err error, format string, args ...any) *Error {
	return &Error{Kind: KindInfrastructure, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err, unwrapping as needed.
// Non-taxonomy errors report KindUnknown.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// HTTPStatus maps an error to the status code the delivery layer responds with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindTypeMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
