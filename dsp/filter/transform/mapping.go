package transform

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/layout"
)

// mapping holds the prewarped analog frequencies of one target.
type mapping struct {
	kind Kind

	wc   float64 // LowPass, HighPass cutoff
	w0sq float64 // BandPass, BandStop center squared
	bw   float64 // BandPass, BandStop width

	// normalAngle is the digital frequency (rad/sample) where analog DC lands.
	normalAngle float64
}

func newMapping(t Target) mapping {
	m := mapping{kind: t.Kind}

	switch t.Kind {
	case LowPass:
		m.wc = math.Tan(math.Pi * t.Frequency)
		m.normalAngle = 0
	case HighPass:
		m.wc = math.Tan(math.Pi * t.Frequency)
		m.normalAngle = math.Pi
	case BandPass, BandStop:
		lo := math.Tan(math.Pi * (t.Frequency - t.Width/2))
		hi := math.Tan(math.Pi * (t.Frequency + t.Width/2))
		m.w0sq = lo * hi
		m.bw = hi - lo

		if t.Kind == BandPass {
			m.normalAngle = 2 * math.Atan(math.Sqrt(m.w0sq))
		} else if t.Frequency < 0.25 {
			m.normalAngle = math.Pi
		}
	}

	return m
}

// appendPair maps one prototype entry and appends the resulting sections.
// LowPass and HighPass produce one section per entry; the band transforms
// double the order and produce two sections per conjugate entry and one
// for the real entry.
func (m mapping) appendPair(dst []biquad.PoleZeroPair, p layout.Pair) []biquad.PoleZeroPair {
	switch m.kind {
	case LowPass, HighPass:
		pole := bilinear(m.scale(p.Pole))
		zero := bilinear(m.scale(p.Zero))

		if p.Real {
			return append(dst, biquad.PoleZeroPair{
				Poles: [2]complex128{pole, 0},
				Zeros: [2]complex128{zero, 0},
			})
		}

		return append(dst, conjugateSection(pole, zero))
	default:
		s1, s2 := m.split(p.Pole)
		t1, t2 := m.split(p.Zero)

		if p.Real {
			return append(dst, biquad.PoleZeroPair{
				Poles: [2]complex128{bilinear(s1), bilinear(s2)},
				Zeros: [2]complex128{bilinear(t1), bilinear(t2)},
			})
		}

		if layout.IsInfinite(p.Zero) {
			// Each root at infinity splits into a real pair (BandPass: DC and
			// Nyquist) or a conjugate pair on the unit circle (BandStop).
			zeros := [2]complex128{bilinear(t1), bilinear(t2)}
			return append(dst,
				biquad.PoleZeroPair{Poles: conjugates(bilinear(s1)), Zeros: zeros},
				biquad.PoleZeroPair{Poles: conjugates(bilinear(s2)), Zeros: zeros},
			)
		}

		s1, s2 = byImag(upper(s1), upper(s2))
		t1, t2 = byImag(upper(t1), upper(t2))

		return append(dst,
			conjugateSection(bilinear(s1), bilinear(t1)),
			conjugateSection(bilinear(s2), bilinear(t2)),
		)
	}
}

// scale applies the LowPass or HighPass frequency transform to one root.
func (m mapping) scale(r complex128) complex128 {
	if m.kind == LowPass {
		if layout.IsInfinite(r) {
			return r
		}
		return complex(m.wc, 0) * r
	}

	switch {
	case layout.IsInfinite(r):
		return 0
	case r == 0:
		return layout.Infinity()
	default:
		return complex(m.wc, 0) / r
	}
}

// split applies a band transform to one root, which yields two roots.
func (m mapping) split(r complex128) (complex128, complex128) {
	w0sq := complex(m.w0sq, 0)
	bw := complex(m.bw, 0)

	if m.kind == BandPass {
		// s^2 - r*B*s + w0^2 = 0
		if layout.IsInfinite(r) {
			return 0, layout.Infinity()
		}

		b := r * bw
		d := cmplx.Sqrt(b*b - 4*w0sq)
		return (b + d) / 2, (b - d) / 2
	}

	// r*s^2 - B*s + r*w0^2 = 0
	switch {
	case layout.IsInfinite(r):
		w0 := math.Sqrt(m.w0sq)
		return complex(0, w0), complex(0, -w0)
	case r == 0:
		return 0, layout.Infinity()
	}

	q := bw / r
	d := cmplx.Sqrt(q*q - 4*w0sq)
	return (q + d) / 2, (q - d) / 2
}

// bilinear maps an s-plane root to the z plane, z = (1+s)/(1-s).
// The frequency axis is already prewarped with tan(pi*f).
func bilinear(s complex128) complex128 {
	if layout.IsInfinite(s) {
		return -1
	}
	return (1 + s) / (1 - s)
}

func conjugates(z complex128) [2]complex128 {
	return [2]complex128{z, cmplx.Conj(z)}
}

func conjugateSection(pole, zero complex128) biquad.PoleZeroPair {
	return biquad.PoleZeroPair{Poles: conjugates(pole), Zeros: conjugates(zero)}
}

func upper(z complex128) complex128 {
	if imag(z) < 0 {
		return cmplx.Conj(z)
	}
	return z
}

// byImag orders two roots so the one higher on the frequency axis comes
// first; pairing poles and zeros in the same order keeps each section's
// zero next to its pole.
func byImag(a, b complex128) (complex128, complex128) {
	if imag(a) < imag(b) {
		return b, a
	}
	return a, b
}
