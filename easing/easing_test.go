package easing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurvesStartAtZeroAndEndAtOne(t *testing.T) {
	for _, name := range Names() {
		if Overshoots(name) {
			continue
		}
		f := MustLookup(name)
		assert.InDelta(t, 0.0, f(0), 1e-9, "%s(0)", name)
		assert.InDelta(t, 1.0, f(1), 1e-9, "%s(1)", name)
	}
}

func TestOvershootingCurves(t *testing.T) {
	elastic := MustLookup("elastic-out")
	assert.Equal(t, 0.0, elastic(0))
	assert.Equal(t, 1.0, elastic(1))
	max := 0.0
	for i := 1; i < 100; i++ {
		max = math.Max(max, elastic(float64(i)/100))
	}
	assert.Greater(t, max, 1.0, "elastic-out is expected to overshoot")
	assert.InDelta(t, 1.0, BounceOut(1), 1e-9)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("wobble")
	assert.False(t, ok)
	assert.Panics(t, func() { MustLookup("wobble") })
}

func TestNamesComplete(t *testing.T) {
	assert.Len(t, Names(), 21)
	assert.Equal(t, "bounce-out", Names()[0])
}

func TestBezier(t *testing.T) {
	ease := Bezier(0.25, 0.1, 0.25, 1)
	assert.InDelta(t, 0.0, ease(0), 1e-9)
	assert.InDelta(t, 1.0, ease(1), 1e-9)
	prev := 0.0
	for i := 1; i <= 20; i++ {
		y := ease(float64(i) / 20)
		assert.GreaterOrEqual(t, y, prev)
		prev = y
	}
	// CSS 'ease' is well above linear at the midpoint
	assert.Greater(t, ease(0.5), 0.7)
}

func TestBezierIdentity(t *testing.T) {
	lin := Bezier(0.3, 0.3, 0.7, 0.7)
	for _, x := range []float64{0, 0.2, 0.5, 0.9} {
		assert.Equal(t, x, lin(x))
	}
}

func TestBezierZeroSlope(t *testing.T) {
	// x1 = 0 gives a zero slope at t = 0: no Newton step is taken
	f := Bezier(0, 0.5, 1, 0.5)
	assert.Equal(t, 0.0, f(0))
}

func TestParse(t *testing.T) {
	f, err := Parse("quad-in")
	require.NoError(t, err)
	assert.Equal(t, 0.25, f(0.5))

	f, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0.3, f(0.3))

	f, err = Parse("cubic-bezier(0.25, 0.1, 0.25, 1)")
	require.NoError(t, err)
	assert.InDelta(t, Bezier(0.25, 0.1, 0.25, 1)(0.4), f(0.4), 1e-12)

	f, err = Parse("cubic-bezier(.68,-.55,.265,1.55)")
	require.NoError(t, err)
	assert.Less(t, f(0.1), 0.0, "back-in-out style curve is expected to undershoot")

	_, err = Parse("cubic-bezier(1, 2, 3)")
	assert.True(t, errors.Is(err, ErrUnknownTimingFunction))
	_, err = Parse("steps(4)")
	assert.True(t, errors.Is(err, ErrUnknownTimingFunction))
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := Parse("cubic-bezier(0.1, 0.2, 0.3, 0.4) junk")
	assert.True(t, errors.Is(err, ErrUnknownTimingFunction))
	_, err = Parse("cubic-bezier(0.1, 0.2, 0.3, 0.4), linear")
	assert.True(t, errors.Is(err, ErrUnknownTimingFunction))
	_, err = Parse("cubic-bezier(0.1, 0.2, 0.3, 0.4) /* eased */")
	assert.NoError(t, err, "comments may follow the closing parenthesis")
}
