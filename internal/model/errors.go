package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the caller is not an authenticated, active admin.
	ErrUnauthorized = errors.New("unauthorized: admin access required")
	// ErrSelfActionForbidden is returned when an admin targets their own account with a
	// role change, ban or delete.
	ErrSelfActionForbidden = errors.New("action on own account is not allowed")
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
	// ErrInvalidQuery is returned for malformed pagination or sort input.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidInput is returned for a request body that fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotificationFailed is returned by email senders when delivery fails.
	ErrNotificationFailed = errors.New("notification failed")
)

// ErrorKind classifies an error for transport mapping.
type ErrorKind int

const (
	KindStore ErrorKind = iota
	KindUnauthorized
	KindSelfActionForbidden
	KindNotFound
	KindConflict
	KindInvalidQuery
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindSelfActionForbidden:
		return "self_action_forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidQuery:
		return "invalid_query"
	case KindValidation:
		return "validation"
	default:
		return "store"
	}
}

// KindOf returns the kind of err. Errors outside the taxonomy are infrastructure failures.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrSelfActionForbidden):
		return KindSelfActionForbidden
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInvalidQuery):
		return KindInvalidQuery
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	default:
		return KindStore
	}
}

// DetailedError carries a client-safe message on top of a taxonomy error.
type DetailedError struct {
	Kind    error
	Message string
}

func (e *DetailedError) Error() string {
	return e.Message
}

func (e *DetailedError) Unwrap() error {
	return e.Kind
}

// NewInvalidQueryError returns an ErrInvalidQuery with a specific message.
func NewInvalidQueryError(msg string) error {
	return &DetailedError{Kind: ErrInvalidQuery, Message: msg}
}

// NewInvalidInputError returns an ErrInvalidInput with a specific message.
func NewInvalidInputError(format string, args ...any) error {
	return &DetailedError{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewSelfActionError returns an ErrSelfActionForbidden naming the refused action.
func NewSelfActionError(action string) error {
	return &DetailedError{Kind: ErrSelfActionForbidden, Message: fmt.Sprintf("you cannot %s your own account", action)}
}
