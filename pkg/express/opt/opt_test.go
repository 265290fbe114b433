package opt_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/dhlexpress/pkg/express/opt"
)

func TestOption_ZeroValueIsNone(t *testing.T) {
	var o opt.Option[string]

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.True(t, o.IsNone())
	assert.Nil(t, o.Ptr())
}

func TestOption_SomeHoldsZeroValues(t *testing.T) {
	o := opt.Some(false)

	v, ok := o.Get()
	assert.True(t, ok)
	assert.False(t, v)
	assert.True(t, o.IsSome())
	if assert.NotNil(t, o.Ptr()) {
		assert.False(t, *o.Ptr())
	}
}

func TestOption_OrElse(t *testing.T) {
	assert.Equal(t, 3, opt.Some(3).OrElse(7))
	assert.Equal(t, 7, opt.None[int]().OrElse(7))
}

func TestOption_PtrIsACopy(t *testing.T) {
	o := opt.Some(5)
	p := o.Ptr()
	*p = 9

	v, _ := o.Get()
	assert.Equal(t, 5, v)
}

func TestFromPtr(t *testing.T) {
	assert.True(t, opt.FromPtr[int](nil).IsNone())

	n := 4
	v, ok := opt.FromPtr(&n).Get()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestMap(t *testing.T) {
	s, ok := opt.Map(opt.Some(12), strconv.Itoa).Get()
	assert.True(t, ok)
	assert.Equal(t, "12", s)

	assert.True(t, opt.Map(opt.None[int](), strconv.Itoa).IsNone())
}
