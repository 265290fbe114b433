package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/dhlexpress/internal/guard"
)

func TestConstructed_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.New()

		assert.NoError(t, g.Validate(errors.New("unused")))
		assert.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the given error", func(t *testing.T) {
		var g guard.Constructed
		want := errors.New("request must be created via NewShipmentRequest")

		assert.Equal(t, want, g.Validate(want))
	})

	t.Run("zero value falls back to default error", func(t *testing.T) {
		var g guard.Constructed

		assert.ErrorIs(t, g.Validate(nil), guard.ErrNotConstructed)
	})
}
