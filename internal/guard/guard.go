// Package guard detects values that were declared instead of built by their constructor.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no specific error is supplied.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// Constructed is embedded in request envelopes. Its zero value marks an envelope that
// skipped validation, e.g. `var r request.ShipmentRequest`.
type Constructed struct {
	ok bool
}

// New returns a guard marking its owner as built by a constructor.
func New() Constructed {
	return Constructed{ok: true}
}

// Validate returns err (or ErrNotConstructed when err is nil) for a zero-value guard.
func (g Constructed) Validate(err error) error {
	if g.ok {
		return nil
	}
	if err == nil {
		return ErrNotConstructed
	}
	return err
}
