package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure. Kinds are what callers branch on; the HTTP layer
// maps them to status codes in one place.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthorized
	KindValidation
	KindInvalidMediaType
	KindConflict
)

// Error is a failure with a kind and a short human-readable message. The
// wrapped cause (if any) stays available via errors.Unwrap for logging, so a
// malformed-id parse error and a genuine miss can be told apart internally
// while both surface as NotFound.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound builds a NotFound error with an optional cause.
func NotFound(msg string, cause ...error) error {
	return build(KindNotFound, msg, cause)
}

// Unauthorized builds an Unauthorized error with an optional cause.
func Unauthorized(msg string, cause ...error) error {
	return build(KindUnauthorized, msg, cause)
}

// Validation builds a ValidationError with an optional cause.
func Validation(msg string, cause ...error) error {
	return build(KindValidation, msg, cause)
}

// InvalidMediaType builds an InvalidMediaType error.
func InvalidMediaType(msg string) error {
	return build(KindInvalidMediaType, msg, nil)
}

// Conflict builds a Conflict error with an optional cause.
func Conflict(msg string, cause ...error) error {
	return build(KindConflict, msg, cause)
}

func build(kind Kind, msg string, cause []error) error {
	e := &Error{Kind: kind, Msg: msg}
	if len(cause) > 0 {
		e.Err = cause[0]
	}
	return e
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the short message of a classified error. Unclassified
// errors collapse to a generic message so store internals never leak to
// clients.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "Internal server error"
}

// HTTPStatus maps a classified error to its HTTP status code. Conflict maps to
// 400 rather than 409 to keep the wire contract of the original API.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindValidation, KindInvalidMediaType, KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
