// Package errors defines the closed taxonomy of failures the service can
// surface to a client. Services return these; the HTTP boundary is the only
// place they are turned into status codes and response bodies.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind tags an Error with its failure class. The HTTP error normalizer
// switches over this set exhaustively.
type Kind int

const (
	// KindValidation is a missing or invalid field in the request.
	KindValidation Kind = iota + 1

	// KindDuplicate is a unique-constraint violation.
	KindDuplicate

	// KindCast is a malformed identifier or type mismatch in a path/body value.
	KindCast

	// KindInvalidToken is a bearer token with a bad signature or shape.
	KindInvalidToken

	// KindTokenExpired is a well-formed bearer token past its expiry.
	KindTokenExpired

	// KindUnauthenticated is a missing credential or one that resolves to no user.
	KindUnauthenticated

	// KindNotFound is an absent resource.
	KindNotFound

	// KindInternal is everything unanticipated. Details stay server-side.
	KindInternal
)

// Error is a taxonomy-tagged failure. Message is safe to show to a client for
// every kind except KindInternal.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from err, unwrapping as needed. Untagged errors
// classify as KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Duplicate(field string) *Error {
	return &Error{
		Kind:    KindDuplicate,
		Message: fmt.Sprintf("Duplicate field value: %q. Please use another value", field),
	}
}

func Cast(field, value string) *Error {
	return &Error{
		Kind:    KindCast,
		Message: fmt.Sprintf("Invalid %s: %s", field, value),
	}
}

func InvalidToken() *Error {
	return &Error{Kind: KindInvalidToken, Message: "Invalid token. Please log in again"}
}

func TokenExpired() *Error {
	return &Error{Kind: KindTokenExpired, Message: "Your token has expired. Please log in again"}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Internal wraps an unanticipated failure. The message handed to clients is
// generic; err is kept for server-side logs.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong", Err: err}
}
