package value

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why a value was rejected.
type Kind string

const (
	FieldTooLong      Kind = "field too long"
	InvalidCharacters Kind = "invalid characters"
	UnknownCode       Kind = "unknown code"
)

// Sentinel errors, one per Kind. A *ValidationError unwraps to the sentinel of its kind.
var (
	ErrFieldTooLong      = errors.New(string(FieldTooLong))
	ErrInvalidCharacters = errors.New(string(InvalidCharacters))
	ErrUnknownCode       = errors.New(string(UnknownCode))
)

// ValidationError reports a value that violates the limits of a carrier field.
type ValidationError struct {
	Field     string
	Value     string
	Kind      Kind
	MaxLength int
	Allowed   []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch e.Kind {
	case FieldTooLong:
		return fmt.Sprintf("%s: %s: %d characters exceed the limit of %d",
			e.Field, e.Kind, runeCount(e.Value), e.MaxLength)
	case UnknownCode:
		return fmt.Sprintf("%s: %s %q, allowed: %s",
			e.Field, e.Kind, e.Value, strings.Join(e.Allowed, ", "))
	default:
		return fmt.Sprintf("%s: %s in %q", e.Field, e.Kind, e.Value)
	}
}

// Unwrap returns the sentinel error matching the kind.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case FieldTooLong:
		return ErrFieldTooLong
	case InvalidCharacters:
		return ErrInvalidCharacters
	case UnknownCode:
		return ErrUnknownCode
	default:
		return nil
	}
}
