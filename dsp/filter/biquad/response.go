package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// At evaluates the section transfer function at an arbitrary point z of
// the z-plane:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
func (c *Coefficients) At(z complex128) complex128 {
	zi := 1 / z
	num := complex(c.B0, 0) + zi*(complex(c.B1, 0)+zi*complex(c.B2, 0))
	den := 1 + zi*(complex(c.A1, 0)+zi*complex(c.A2, 0))
	return num / den
}

// Response returns H(e^jw) at freqHz for the given sample rate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.At(cmplx.Rect(1, 2*math.Pi*freqHz/sampleRate))
}

// MagnitudeSquared returns |H(e^jw)|^2 without complex arithmetic. With
// k = 2cos(w), both |N|^2 and |D|^2 are quadratics in k.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	k := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)

	num := sq(c.B0-c.B2) + sq(c.B1) + k*(c.B1*(c.B0+c.B2)+k*c.B0*c.B2)
	den := sq(1-c.A2) + sq(c.A1) + k*(c.A1*(1+c.A2)+k*c.A2)
	return num / den
}

// MagnitudeDB returns the section magnitude at freqHz in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Response returns the gain-scaled product of the section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	z := cmplx.Rect(1, 2*math.Pi*freqHz/sampleRate)

	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].At(z)
	}
	return h
}

// MagnitudeDB returns the cascade magnitude at freqHz in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

func sq(x float64) float64 { return x * x }
