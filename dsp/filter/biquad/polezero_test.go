package biquad

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoleZeroPair_ConjugateRoots(t *testing.T) {
	p := complex(0.72, 0.19)
	z := complex(0.31, 0.44)

	const b0 = 2.3
	c := Coefficients{
		B0: b0,
		B1: -b0 * 2 * real(z),
		B2: b0 * real(z*cmplx.Conj(z)),
		A1: -2 * real(p),
		A2: real(p * cmplx.Conj(p)),
	}

	pair := c.PoleZeroPair()
	assertRoots(t, pair.Poles, p, cmplx.Conj(p))
	assertRoots(t, pair.Zeros, z, cmplx.Conj(z))
}

func TestPoleZeroPair_FirstOrder(t *testing.T) {
	c := Coefficients{B0: 1, B1: -0.3, A1: -0.8}

	pair := c.PoleZeroPair()
	assertRoots(t, pair.Poles, 0.8, 0)
	assertRoots(t, pair.Zeros, 0.3, 0)
}

func TestFromPoleZeroPair_ConjugatePair(t *testing.T) {
	p := complex(0.6, 0.35)
	z := complex(-0.2, 0.97)
	c := FromPoleZeroPair(PoleZeroPair{
		Poles: [2]complex128{p, cmplx.Conj(p)},
		Zeros: [2]complex128{z, cmplx.Conj(z)},
	})

	assert.InDelta(t, 1.0, c.B0, 0)

	pair := c.PoleZeroPair()
	assertRoots(t, pair.Poles, p, cmplx.Conj(p))
	assertRoots(t, pair.Zeros, z, cmplx.Conj(z))
}

func TestFromPoleZeroPair_FirstOrder(t *testing.T) {
	c := FromPoleZeroPair(PoleZeroPair{
		Poles: [2]complex128{0.8, 0},
		Zeros: [2]complex128{-1, 0},
	})

	assert.Equal(t, Coefficients{B0: 1, B1: 1, A1: -0.8}, c)
}

func TestFromPoleZeroPair_ResponseVanishesAtZero(t *testing.T) {
	// A zero on the unit circle at a quarter of the sample rate.
	c := FromPoleZeroPair(PoleZeroPair{
		Poles: [2]complex128{complex(0, 0.5), complex(0, -0.5)},
		Zeros: [2]complex128{1i, -1i},
	})

	assert.InDelta(t, 0, cmplx.Abs(c.Response(12000, 48000)), 1e-12)
	assert.Greater(t, cmplx.Abs(c.Response(0, 48000)), 1.0)
}

func assertRoots(t *testing.T, got [2]complex128, want1, want2 complex128) {
	t.Helper()

	const tol = 1e-12

	straight := cmplx.Abs(got[0]-want1) <= tol && cmplx.Abs(got[1]-want2) <= tol
	swapped := cmplx.Abs(got[0]-want2) <= tol && cmplx.Abs(got[1]-want1) <= tol
	assert.True(t, straight || swapped, "roots %v, want {%v, %v}", got, want1, want2)
}
