// Package apperror classifies domain failures so transport layers can map
// them to status codes without inspecting messages.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the category of a domain error
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindInvalidCode
	KindInfrastructure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidCode:
		return "invalid_code"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

// Error is a classified error. Message is safe to return to callers,
// Err carries the underlying cause for logs.
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

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Validation reports malformed or out-of-range input
func Validation(msg string) error {
	return newError(KindValidation, msg, nil)
}

// Validationf is Validation with formatting
func Validationf(format string, args ...interface{}) error {
	return newError(KindValidation, fmt.Sprintf(format, args...), nil)
}

// Authentication reports a missing or invalid identity
func Authentication(msg string) error {
	return newError(KindAuthentication, msg, nil)
}

// Authorization reports a wrong role or a non-owner caller
func Authorization(msg string) error {
	return newError(KindAuthorization, msg, nil)
}

// NotFound reports a missing ride, request or passenger
func NotFound(msg string) error {
	return newError(KindNotFound, msg, nil)
}

// Conflict reports a lifecycle or capacity violation
func Conflict(msg string) error {
	return newError(KindConflict, msg, nil)
}

// Conflictf is Conflict with formatting
func Conflictf(format string, args ...interface{}) error {
	return newError(KindConflict, fmt.Sprintf(format, args...), nil)
}

// InvalidCode reports a missing, expired or mismatched one-time code
func InvalidCode(msg string) error {
	return newError(KindInvalidCode, msg, nil)
}

// Infrastructure wraps a store, broker or cache failure
func Infrastructure(msg string, err error) error {
	return newError(KindInfrastructure, msg, err)
}

// KindOf returns the kind of the first classified error in err's chain
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err is classified as kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the caller-safe message for err
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// HTTPStatus maps err to a response status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict, KindInvalidCode:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
