package cpe

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the cpe error domain type.
//
// Errors coming from this package can be inspected as ([errors.As]) an *Error
// at some point in the error chain. Callers should compare against a
// declared [ErrorKind] with [errors.Is] rather than a specific error value.
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string
}

var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case ErrInvalidAttribute,
		ErrInvalidValue,
		ErrInvalidFormat,
		ErrIncompatible,
		ErrInvalidExpression,
		ErrUnsupportedOperation:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Op == "" && e.Message == "" {
		b.Reset()
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables [errors.Is].
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind represents a class of error raised by this package.
//
// The taxonomy follows the CPE specification's error surface: parsing,
// per-attribute validation, cross-version conversion, and applicability
// expression errors are all distinguishable kinds.
type ErrorKind string

// Defined error kinds.
var (
	// ErrInvalidAttribute is reported when an attribute tag is not one of
	// the known CPE attributes.
	ErrInvalidAttribute = ErrorKind("invalid attribute")
	// ErrInvalidValue is reported when a component's text fails the grammar
	// for its attribute.
	ErrInvalidValue = ErrorKind("invalid value")
	// ErrInvalidFormat is reported when a name fails to parse against a
	// version's textual grammar.
	ErrInvalidFormat = ErrorKind("invalid format")
	// ErrIncompatible is reported when a requested cross-version or
	// cross-encoding emission cannot preserve the name's semantics.
	ErrIncompatible = ErrorKind("incompatible")
	// ErrInvalidExpression is reported when an applicability document is
	// malformed.
	ErrInvalidExpression = ErrorKind("invalid expression")
	// ErrUnsupportedOperation is reported when an operation is requested on
	// a logical component value that has no meaningful result for it.
	ErrUnsupportedOperation = ErrorKind("unsupported operation")
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}

// invalidValue is a helper for constructing the common "value failed
// validation for this attribute" error.
func invalidValue(att Attribute, text string, cause error) error {
	return &Error{
		Kind:    ErrInvalidValue,
		Op:      "cpe: value",
		Message: fmt.Sprintf("attribute %v: %q", att, text),
		Inner:   cause,
	}
}

// invalidAttribute is a helper for constructing the "unknown attribute tag"
// error.
func invalidAttribute(att Attribute) error {
	return &Error{
		Kind:    ErrInvalidAttribute,
		Op:      "cpe: value",
		Message: fmt.Sprintf("unknown attribute %d", int(att)),
	}
}
