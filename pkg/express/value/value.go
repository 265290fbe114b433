// Package value provides the validated text types of the DHL Express schema.
//
// Every carrier field is an instantiation of the single generic Bounded type. The type
// parameter is a field definition: an empty struct reporting the carrier's field name and
// maximum length, and optionally a character-set predicate (Charset) or a fixed code list
// (Vocabulary). Values are validated once, at construction, and never change afterwards.
//
//	tmpl, err := value.NewLabelTemplate("ECOM26_84_001")
//	if err != nil {
//	    // errors.Is(err, value.ErrFieldTooLong)
//	}
//	fmt.Println(tmpl) // ECOM26_84_001
package value

import (
	"slices"
	"unicode/utf8"
)

// Field describes the limits the carrier documents for one schema field.
type Field interface {
	Name() string
	MaxLength() int
}

// Charset is implemented by fields that only accept certain characters.
type Charset interface {
	Allows(r rune) bool
}

// Vocabulary is implemented by fields that only accept a fixed set of codes.
type Vocabulary interface {
	Codes() []string
}

// Bounded is a text value satisfying the limits of field F.
// The zero value holds the empty string.
type Bounded[F Field] struct {
	raw string
}

// New validates s against field F. The input is stored as given: no trimming, no case folding.
func New[F Field](s string) (Bounded[F], error) {
	var f F

	if n := runeCount(s); n > f.MaxLength() {
		return Bounded[F]{}, &ValidationError{
			Field:     f.Name(),
			Value:     s,
			Kind:      FieldTooLong,
			MaxLength: f.MaxLength(),
		}
	}

	if cs, ok := any(f).(Charset); ok {
		for _, r := range s {
			if !cs.Allows(r) {
				return Bounded[F]{}, &ValidationError{
					Field:     f.Name(),
					Value:     s,
					Kind:      InvalidCharacters,
					MaxLength: f.MaxLength(),
				}
			}
		}
	}

	if v, ok := any(f).(Vocabulary); ok {
		if !slices.Contains(v.Codes(), s) {
			return Bounded[F]{}, &ValidationError{
				Field:     f.Name(),
				Value:     s,
				Kind:      UnknownCode,
				MaxLength: f.MaxLength(),
				Allowed:   v.Codes(),
			}
		}
	}

	return Bounded[F]{raw: s}, nil
}

// String returns the stored text unchanged.
func (b Bounded[F]) String() string {
	return b.raw
}

// FieldName returns the carrier field name of F.
func (b Bounded[F]) FieldName() string {
	var f F
	return f.Name()
}

// MaxLength returns the maximum length of F in characters.
func (b Bounded[F]) MaxLength() int {
	var f F
	return f.MaxLength()
}

func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
