package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the closed set of failure categories the core surfaces.
// Callers map kinds to user-facing responses; the services never format
// HTTP concerns themselves.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindNotFound          ErrorKind = "not_found"
	KindConflict          ErrorKind = "conflict"
	KindInsufficientStock ErrorKind = "insufficient_stock"
	KindInvalidState      ErrorKind = "invalid_state"
	KindUnsupported       ErrorKind = "unsupported"
)

type Error struct {
	Kind    ErrorKind
	Message string
	// Available carries the remaining stock on insufficient-stock failures.
	Available int
}

func (e *Error) Error() string { return e.Message }

func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func InvalidStatef(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Unsupportedf(format string, args ...interface{}) error {
	return &Error{Kind: KindUnsupported, Message: fmt.Sprintf(format, args...)}
}

func InsufficientStockError(available, requested int) error {
	return &Error{
		Kind:      KindInsufficientStock,
		Message:   fmt.Sprintf("insufficient stock: available %d, requested %d", available, requested),
		Available: available,
	}
}

// KindOf extracts the kind from an error chain, or "" for untyped errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error kind to the status the thin request layer should
// answer with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInsufficientStock:
		return http.StatusConflict
	case KindInvalidState, KindUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
