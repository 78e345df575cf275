package model

import "fmt"

// Kind classifies a model-level error per the error taxonomy: InvalidInput,
// ReferenceError, ConflictError, StyleError, SemanticError, and IO. There is
// intentionally no Go equivalent for OutOfMemory -- an allocation failure in
// Go surfaces as a runtime panic, not recoverable control flow, so no
// component in this module attempts to construct or return one.
type Kind int

const (
	// InvalidInput marks malformed input: bad JSON shape, an unrecognized
	// field type, a required field missing.
	InvalidInput Kind = iota
	// ReferenceError marks an unresolved or cyclic $ref/$dynamicRef.
	ReferenceError
	// ConflictError marks a mutual-exclusivity or uniqueness violation
	// (duplicate operationId, two value forms set on one Example, etc).
	ConflictError
	// StyleError marks a parameter serialization style inconsistent with
	// its location (e.g. style "matrix" on a query parameter).
	StyleError
	// SemanticError marks a cross-cutting validation failure that is
	// structurally well-formed but semantically wrong (path template vs.
	// declared path parameters mismatch, etc).
	SemanticError
	// IO marks a failure reading source material (file, document).
	IO
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case ReferenceError:
		return "ReferenceError"
	case ConflictError:
		return "ConflictError"
	case StyleError:
		return "StyleError"
	case SemanticError:
		return "SemanticError"
	case IO:
		return "IO"
	default:
		return "Unknown"
	}
}

// Error is a typed, path-tagged error produced by the loader and validator.
// Path is a JSON-Pointer-style location within the document the error
// pertains to (e.g. "/paths/~1pets~1{id}/get/responses/200").
type Error struct {
	Kind    Kind
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError constructs a tagged Error. Use Errorf for printf-style messages.
func NewError(kind Kind, path, message string) *Error {
	return &Error{Kind: kind, Path: path, Message: message}
}

// Errorf constructs a tagged Error with a formatted message.
func Errorf(kind Kind, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs a tagged Error that wraps an underlying error.
func Wrap(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Message: err.Error(), Err: err}
}
