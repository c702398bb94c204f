package design_test

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/filter/cheby2/design"
)

var (
	prototypeOrders      = []int{1, 2, 3, 4, 5, 6, 7, 8, 11, 12, 16}
	prototypeAttenuation = []float64{10, 20, 40, 60, 80}
)

// chebyT evaluates the Chebyshev polynomial of the first kind for x >= 0.
func chebyT(n int, x float64) float64 {
	if x <= 1 {
		return math.Cos(float64(n) * math.Acos(x))
	}
	return math.Cosh(float64(n) * math.Acosh(x))
}

func TestAnalogLowPass_PolesAndZeros(t *testing.T) {
	for _, n := range prototypeOrders {
		for _, a := range prototypeAttenuation {
			t.Run(fmt.Sprintf("n=%d/A=%g", n, a), func(t *testing.T) {
				l, err := design.AnalogLowPass(n, a)
				require.NoError(t, err)

				assert.Equal(t, n, l.NumPoles())
				assert.True(t, l.Stable())

				wantZeros := n
				if n%2 == 1 {
					wantZeros = n - 1
				}
				assert.Equal(t, wantZeros, l.NumZeros())

				for _, p := range l.Pairs() {
					assert.Less(t, real(p.Pole), 0.0)
					if !p.Real {
						assert.InDelta(t, 0, real(p.Zero), 1e-12, "zeros lie on the imaginary axis")
						assert.GreaterOrEqual(t, imag(p.Zero), 1.0)
					}
				}
			})
		}
	}
}

func TestAnalogLowPass_UnityAtDC(t *testing.T) {
	for _, n := range prototypeOrders {
		for _, a := range prototypeAttenuation {
			l, err := design.AnalogLowPass(n, a)
			require.NoError(t, err)
			assert.InDelta(t, 1, cmplx.Abs(l.Response(0)), 1e-9, "n=%d A=%g", n, a)
		}
	}
}

func TestAnalogLowPass_MatchesInverseChebyshevMagnitude(t *testing.T) {
	for _, n := range prototypeOrders {
		for _, a := range prototypeAttenuation {
			l, err := design.AnalogLowPass(n, a)
			require.NoError(t, err)

			eps2 := 1 / (math.Pow(10, a/10) - 1)
			for _, w := range []float64{0.1, 0.5, 0.9, 1, 1.3, 2, 5, 20} {
				c := chebyT(n, 1/w)
				want := math.Sqrt(eps2 * c * c / (1 + eps2*c*c))
				got := cmplx.Abs(l.ResponseAt(w))
				assert.InDelta(t, want, got, 1e-9*math.Max(1, want), "n=%d A=%g w=%g", n, a, w)
			}
		}
	}
}

func TestAnalogLowPass_Stopband(t *testing.T) {
	for _, n := range prototypeOrders {
		for _, a := range prototypeAttenuation {
			l, err := design.AnalogLowPass(n, a)
			require.NoError(t, err)

			limit := math.Pow(10, -a/20)
			for w := 1.0; w < 1000; w *= 1.05 {
				got := cmplx.Abs(l.ResponseAt(w))
				assert.LessOrEqual(t, got, limit*(1+1e-9), "n=%d A=%g w=%g", n, a, w)
			}
		}
	}
}

func TestAnalogLowPass_PassbandMonotonic(t *testing.T) {
	l, err := design.AnalogLowPass(6, 50)
	require.NoError(t, err)

	prev := cmplx.Abs(l.ResponseAt(0))
	for w := 0.01; w < 1; w += 0.01 {
		got := cmplx.Abs(l.ResponseAt(w))
		assert.LessOrEqual(t, got, prev+1e-12, "w=%g", w)
		assert.LessOrEqual(t, got, 1+1e-12)
		prev = got
	}
}

func TestAnalogLowPass_OddOrderZeroAtInfinity(t *testing.T) {
	l, err := design.AnalogLowPass(5, 40)
	require.NoError(t, err)

	pairs := l.Pairs()
	last := pairs[len(pairs)-1]
	require.True(t, last.Real)
	assert.True(t, cmplx.IsInf(last.Zero))
	assert.Equal(t, complex(0, 0), l.ResponseAt(math.Inf(1)))
}

func TestAnalogLowPass_InvalidArguments(t *testing.T) {
	cases := []struct {
		order int
		a     float64
	}{
		{0, 40},
		{-3, 40},
		{4, 0},
		{4, -10},
		{4, math.NaN()},
		{4, math.Inf(1)},
	}

	for _, tc := range cases {
		_, err := design.AnalogLowPass(tc.order, tc.a)
		assert.ErrorIs(t, err, design.ErrInvalidArgument, "order=%d A=%g", tc.order, tc.a)
	}
}

// shelfMagnitude evaluates the closed-form low-shelf magnitude at w rad/s.
func shelfMagnitude(n int, gainDB, stopBandDB, w float64) float64 {
	gc := math.Pow(10, -math.Abs(gainDB)/20)
	e2 := math.Pow(10, stopBandDB/10) - 1

	b := e2
	if n%2 == 0 {
		b += 1 - gc*gc
	}

	c := chebyT(n, 1/w)
	cut := math.Sqrt((gc*gc*c*c + b) / (c*c + e2))
	if gainDB > 0 {
		return 1 / cut
	}
	return cut
}

func TestAnalogLowShelf_Gains(t *testing.T) {
	for _, n := range prototypeOrders {
		for _, a := range []float64{3, 10, 20, 40} {
			for _, g := range []float64{-24, -20, -6, 3, 12, 20} {
				t.Run(fmt.Sprintf("n=%d/A=%g/G=%g", n, a, g), func(t *testing.T) {
					l, err := design.AnalogLowShelf(n, g, a)
					require.NoError(t, err)

					assert.Equal(t, n, l.NumPoles())
					assert.Equal(t, n, l.NumZeros())
					assert.True(t, l.Stable())

					assert.InDelta(t, math.Pow(10, g/20), cmplx.Abs(l.Response(0)), 1e-9)
					assert.InDelta(t, 1, cmplx.Abs(l.ResponseAt(math.Inf(1))), 1e-9)
				})
			}
		}
	}
}

func TestAnalogLowShelf_MatchesShelfMagnitude(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7, 8} {
		for _, g := range []float64{-9, 9} {
			const a = 30.0
			l, err := design.AnalogLowShelf(n, g, a)
			require.NoError(t, err)

			for _, w := range []float64{0.05, 0.3, 0.8, 1, 1.5, 4, 50} {
				want := shelfMagnitude(n, g, a, w)
				assert.InDelta(t, want, cmplx.Abs(l.ResponseAt(w)), 1e-9*want, "n=%d g=%g w=%g", n, g, w)
			}
		}
	}
}

func TestAnalogLowShelf_EquirippleRegion(t *testing.T) {
	for _, n := range []int{5, 6} {
		for _, g := range []float64{-12, 12} {
			l, err := design.AnalogLowShelf(n, g, 20)
			require.NoError(t, err)

			gb := design.ShelfEdgeGain(n, g, 20)
			lo, hi := math.Min(1, gb), math.Max(1, gb)
			for w := 1.0; w < 500; w *= 1.03 {
				got := cmplx.Abs(l.ResponseAt(w))
				assert.GreaterOrEqual(t, got, lo-1e-9, "n=%d g=%g w=%g", n, g, w)
				assert.LessOrEqual(t, got, hi+1e-9, "n=%d g=%g w=%g", n, g, w)
			}
		}
	}
}

func TestAnalogLowShelf_ZeroGainIsFlat(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8} {
		l, err := design.AnalogLowShelf(n, 0, 40)
		require.NoError(t, err)
		assert.Equal(t, n, l.NumPoles())

		for _, w := range []float64{0, 0.2, 1, 3, 100} {
			assert.InDelta(t, 1, cmplx.Abs(l.ResponseAt(w)), 1e-12, "n=%d w=%g", n, w)
		}
	}
}

func TestAnalogLowShelf_InvalidArguments(t *testing.T) {
	_, err := design.AnalogLowShelf(0, 6, 40)
	assert.ErrorIs(t, err, design.ErrInvalidArgument)

	_, err = design.AnalogLowShelf(4, 6, 0)
	assert.ErrorIs(t, err, design.ErrInvalidArgument)

	_, err = design.AnalogLowShelf(4, math.Inf(-1), 40)
	assert.ErrorIs(t, err, design.ErrInvalidArgument)

	_, err = design.AnalogLowShelf(4, math.NaN(), 40)
	assert.True(t, errors.Is(err, design.ErrInvalidArgument))
}

func TestShelfEdgeGain(t *testing.T) {
	for _, n := range []int{1, 2} {
		assert.InDelta(t, 1, design.ShelfEdgeGain(n, 0, 40), 1e-15)
	}

	g := math.Pow(10, 12.0/20)

	// Odd cut ripples toward the shelf, even cut away from it.
	odd := design.ShelfEdgeGain(3, -12, 20)
	assert.Less(t, odd, 1.0)
	assert.Greater(t, odd, 1/g)

	even := design.ShelfEdgeGain(4, -12, 20)
	assert.Greater(t, even, 1.0)

	// A boost mirrors the cut.
	assert.InDelta(t, 1/odd, design.ShelfEdgeGain(3, 12, 20), 1e-12)
	assert.InDelta(t, 1/even, design.ShelfEdgeGain(4, 12, 20), 1e-12)

	// The extremes sit where C^2 = 1 (odd) and C = 0 (even).
	assert.InDelta(t, shelfMagnitude(3, -12, 20, 1), odd, 1e-12)
	assert.InDelta(t, shelfMagnitude(4, -12, 20, 1/math.Cos(math.Pi/8)), even, 1e-9)
}
