package layout

import (
	"math"
	"math/cmplx"
)

// Pair is one entry of a pole/zero layout.
//
// A conjugate entry (Real == false) stores a single pole and zero; their
// complex conjugates are part of the layout but never stored. A real entry
// holds one real pole and one real (or infinite) zero.
type Pair struct {
	Pole complex128
	Zero complex128
	Real bool
}

// Layout is an ordered s-plane pole/zero pattern with an overall gain:
//
//	H(s) = Gain * prod(s - z) / prod(s - p)
//
// where the products run over every stored pole and zero plus the implied
// conjugates. Zeros at [Infinity] contribute no factor.
//
// At most one real entry is held and it is always the last one.
type Layout struct {
	pairs []Pair
	Gain  float64
}

// Infinity returns the value used to mark a zero at infinity.
func Infinity() complex128 {
	return cmplx.Inf()
}

// IsInfinite reports whether z marks a root at infinity.
func IsInfinite(z complex128) bool {
	return cmplx.IsInf(z)
}

// New returns an empty layout with room for order poles.
func New(order int) Layout {
	if order < 0 {
		order = 0
	}

	return Layout{
		pairs: make([]Pair, 0, (order+1)/2),
		Gain:  1,
	}
}

// AddConjugatePair appends a pole/zero pair together with its implied
// conjugates. The pole is stored in the upper half plane.
func (l *Layout) AddConjugatePair(pole, zero complex128) {
	if imag(pole) < 0 {
		pole = cmplx.Conj(pole)
		if !IsInfinite(zero) {
			zero = cmplx.Conj(zero)
		}
	}

	l.pairs = append(l.pairs, Pair{Pole: pole, Zero: zero})
}

// AddReal appends the single real pole of an odd-order layout.
func (l *Layout) AddReal(pole, zero float64) {
	z := complex(zero, 0)
	if math.IsInf(zero, 0) {
		z = Infinity()
	}

	l.pairs = append(l.pairs, Pair{Pole: complex(pole, 0), Zero: z, Real: true})
}

// Pairs returns a copy of the stored entries.
func (l Layout) Pairs() []Pair {
	out := make([]Pair, len(l.pairs))
	copy(out, l.pairs)
	return out
}

// NumPoles returns the total pole count including implied conjugates.
func (l Layout) NumPoles() int {
	n := 0
	for _, p := range l.pairs {
		if p.Real {
			n++
		} else {
			n += 2
		}
	}
	return n
}

// NumZeros returns the number of finite zeros including implied conjugates.
func (l Layout) NumZeros() int {
	n := 0
	for _, p := range l.pairs {
		if IsInfinite(p.Zero) {
			continue
		}
		if p.Real {
			n++
		} else {
			n += 2
		}
	}
	return n
}

// Stable reports whether every pole lies strictly in the left half plane.
func (l Layout) Stable() bool {
	for _, p := range l.pairs {
		if !(real(p.Pole) < 0) {
			return false
		}
	}
	return len(l.pairs) > 0
}

// Response evaluates H(s) at the given s-plane point.
func (l Layout) Response(s complex128) complex128 {
	return complex(l.Gain, 0) * l.unscaled(s)
}

// ResponseAt evaluates H(jw) at the analog radian frequency w.
// Passing +Inf returns the limit as w grows without bound.
func (l Layout) ResponseAt(w float64) complex128 {
	if math.IsInf(w, 1) {
		return complex(l.Gain, 0) * l.limitAtInfinity()
	}

	return l.Response(complex(0, w))
}

// NormalizeAt sets Gain so that |H(s)| equals magnitude at s.
//
// At s = 0 this is the ratio of the products of the negated poles and the
// negated zeros, scaled by magnitude.
func (l *Layout) NormalizeAt(s complex128, magnitude float64) {
	h := cmplx.Abs(l.unscaled(s))
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		l.Gain = 1
		return
	}

	l.Gain = magnitude / h
}

func (l Layout) unscaled(s complex128) complex128 {
	h := complex(1, 0)
	for _, p := range l.pairs {
		if p.Real {
			h /= s - p.Pole
			if !IsInfinite(p.Zero) {
				h *= s - p.Zero
			}
			continue
		}

		h /= (s - p.Pole) * (s - cmplx.Conj(p.Pole))
		if !IsInfinite(p.Zero) {
			h *= (s - p.Zero) * (s - cmplx.Conj(p.Zero))
		}
	}
	return h
}

// limitAtInfinity returns lim H(jw)/Gain as w -> inf, which is 1 when
// every pole has a finite zero and 0 otherwise.
func (l Layout) limitAtInfinity() complex128 {
	if l.NumZeros() < l.NumPoles() {
		return 0
	}
	return 1
}
