// Package serrors carries the semantic error kinds shared by services and the
// HTTP boundary. Services return kinds, the API layer turns them into status
// codes.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only values built by NewKind satisfy it.
type Kind interface {
	error
	isKind()
}

type kind string

func (k kind) Error() string { return string(k) }
func (kind) isKind()         {}

// NewKind returns a sentinel kind. Its name doubles as the wire error code.
func NewKind(code string) Kind { return kind(code) }

var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden means the actor is known but lacks the role or ownership.
	ErrForbidden  = NewKind("FORBIDDEN")
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict reports a uniqueness or state clash, e.g. a duplicate unit
	// or a second pending application.
	ErrConflict    = NewKind("CONFLICT")
	ErrInternal    = NewKind("INTERNAL")
	ErrTimeout     = NewKind("TIMEOUT")
	ErrUnavailable = NewKind("UNAVAILABLE")
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrDependency is used when the asset store or the mail provider fails.
	ErrDependency = NewKind("DEPENDENCY_FAILURE")
)

// Error pairs a Kind with a message and an optional cause. errors.Is and
// errors.As look at both the kind and the cause.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With returns an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap is With plus a cause.
func Wrap(k Kind, cause error, msgFmt string, args ...any) *Error {
	e := With(k, msgFmt, args...)
	e.cause = cause

	return e
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// KindOf returns the kind carried anywhere in err's chain, ErrInternal if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.kind != nil {
		return e.kind
	}

	return ErrInternal
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := e.msg
	if e.cause != nil {
		if msg == "" {
			return e.cause.Error()
		}
		msg += ": " + e.cause.Error()
	}
	if msg != "" {
		return msg
	}
	if e.kind != nil {
		return e.kind.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.cause != nil && errors.Is(e.cause, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.cause != nil && errors.As(e.cause, target))
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.cause }
