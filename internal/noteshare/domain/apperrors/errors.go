// Package apperrors defines the tagged error values used as the uniform
// failure channel across the service layer.
package apperrors

import "errors"

// Kind tags an error with its failure category.
type Kind string

// Failure categories.
const (
	Validation     Kind = "ValidationError"
	Authorization  Kind = "AuthorizationError"
	RecordNotFound Kind = "RecordNotFound"
	Fetch          Kind = "FetchError"
	Database       Kind = "DatabaseError"
)

// Error is an immutable tagged error value carrying a kind and a
// human-readable message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// New constructs a tagged error value.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Convert returns a converter that replaces an arbitrary failure with a
// fixed tagged error. The original failure stays reachable through Unwrap
// for logging but never changes the surfaced kind or message.
func Convert(kind Kind, message string) func(error) *Error {
	return func(err error) *Error {
		return &Error{Kind: kind, Message: message, cause: err}
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the replaced failure, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the kind from an error chain. Untagged errors report an
// empty kind.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return ""
}

// IsKind reports whether the error chain carries a tagged error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
