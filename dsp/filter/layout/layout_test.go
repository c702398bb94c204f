package layout_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/filter/layout"
)

func TestLayout_Counts(t *testing.T) {
	l := layout.New(3)
	l.AddConjugatePair(complex(-0.5, 1), complex(0, 2))
	l.AddReal(-1, math.Inf(1))

	assert.Len(t, l.Pairs(), 2)
	assert.Equal(t, 3, l.NumPoles())
	assert.Equal(t, 2, l.NumZeros())
	assert.True(t, l.Stable())
}

func TestLayout_AddConjugatePair_StoresUpperHalf(t *testing.T) {
	l := layout.New(2)
	l.AddConjugatePair(complex(-0.5, -1), complex(0, -2))

	pairs := l.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, complex(-0.5, 1), pairs[0].Pole)
	assert.Equal(t, complex(0, 2), pairs[0].Zero)
	assert.False(t, pairs[0].Real)
}

func TestLayout_AddConjugatePair_KeepsInfiniteZero(t *testing.T) {
	l := layout.New(2)
	l.AddConjugatePair(complex(-0.5, -1), layout.Infinity())

	pairs := l.Pairs()
	require.Len(t, pairs, 1)
	assert.True(t, layout.IsInfinite(pairs[0].Zero))
	assert.Equal(t, 0, l.NumZeros())
}

func TestLayout_Pairs_ReturnsCopy(t *testing.T) {
	l := layout.New(1)
	l.AddReal(-1, 0)

	pairs := l.Pairs()
	pairs[0].Pole = 5

	assert.Equal(t, complex(-1, 0), l.Pairs()[0].Pole)
}

func TestLayout_Stable(t *testing.T) {
	empty := layout.New(2)
	assert.False(t, empty.Stable())

	rhp := layout.New(1)
	rhp.AddReal(0.1, math.Inf(1))
	assert.False(t, rhp.Stable())

	axis := layout.New(2)
	axis.AddConjugatePair(complex(0, 1), layout.Infinity())
	assert.False(t, axis.Stable())
}

func TestLayout_Response(t *testing.T) {
	// H(s) = 2 * (s + 3) / (s + 1)
	l := layout.New(1)
	l.AddReal(-1, -3)
	l.Gain = 2

	assert.InDelta(t, 6, real(l.Response(0)), 1e-12)
	assert.InDelta(t, 0, imag(l.Response(0)), 1e-12)

	s := complex(0, 1)
	want := 2 * (s + 3) / (s + 1)
	assert.InDelta(t, 0, cmplx.Abs(l.ResponseAt(1)-want), 1e-12)

	assert.InDelta(t, 2, real(l.ResponseAt(math.Inf(1))), 1e-12)
}

func TestLayout_ResponseAt_InfinityWithMissingZero(t *testing.T) {
	l := layout.New(1)
	l.AddReal(-1, math.Inf(1))

	assert.Equal(t, complex(0, 0), l.ResponseAt(math.Inf(1)))
}

func TestLayout_NormalizeAt(t *testing.T) {
	l := layout.New(2)
	l.AddConjugatePair(complex(-0.3, 0.9), complex(0, 1.5))
	l.NormalizeAt(0, 0.25)

	assert.InDelta(t, 0.25, cmplx.Abs(l.Response(0)), 1e-12)

	l.NormalizeAt(complex(0, 0.5), 1)
	assert.InDelta(t, 1, cmplx.Abs(l.ResponseAt(0.5)), 1e-12)
}

func TestLayout_NormalizeAt_ZeroResponseKeepsUnity(t *testing.T) {
	l := layout.New(2)
	l.AddConjugatePair(complex(-0.3, 0.9), complex(0, 1.5))
	l.NormalizeAt(complex(0, 1.5), 1)

	assert.Equal(t, 1.0, l.Gain)
}
