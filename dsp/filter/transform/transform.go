package transform

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/layout"
)

// ErrInvalidTarget is returned when a target frequency, width or prototype
// cannot be digitized.
var ErrInvalidTarget = errors.New("transform: invalid target")

// Kind selects the s-plane frequency transform applied to a unit-cutoff
// lowpass prototype before the bilinear mapping.
type Kind int

const (
	// LowPass scales the prototype: s -> s/wc.
	LowPass Kind = iota
	// HighPass inverts the prototype: s -> wc/s.
	HighPass
	// BandPass maps s -> (s^2 + w0^2) / (B*s).
	BandPass
	// BandStop maps s -> B*s / (s^2 + w0^2).
	BandStop
)

// String returns the transform name.
func (k Kind) String() string {
	switch k {
	case LowPass:
		return "lowpass"
	case HighPass:
		return "highpass"
	case BandPass:
		return "bandpass"
	case BandStop:
		return "bandstop"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Target describes where the prototype is moved to.
// Frequencies are fractions of the sample rate, so Nyquist is 0.5.
type Target struct {
	Kind Kind

	// Frequency is the cutoff (LowPass, HighPass) or the center
	// (BandPass, BandStop).
	Frequency float64

	// Width is the band width, used by BandPass and BandStop only.
	Width float64
}

// Validate checks that the target lies strictly inside (0, 0.5).
func (t Target) Validate() error {
	if !core.IsFinite(t.Frequency) || t.Frequency <= 0 || t.Frequency >= 0.5 {
		return fmt.Errorf("%w: frequency %g not in (0, 0.5)", ErrInvalidTarget, t.Frequency)
	}

	switch t.Kind {
	case LowPass, HighPass:
		return nil
	case BandPass, BandStop:
		if !core.IsFinite(t.Width) || t.Width <= 0 {
			return fmt.Errorf("%w: width %g must be positive", ErrInvalidTarget, t.Width)
		}

		lo := t.Frequency - t.Width/2
		hi := t.Frequency + t.Width/2
		if lo <= 0 || hi >= 0.5 {
			return fmt.Errorf("%w: band [%g, %g] not inside (0, 0.5)", ErrInvalidTarget, lo, hi)
		}

		return nil
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidTarget, t.Kind)
	}
}

// Sections returns the number of biquad sections Digitize produces for a
// prototype of the given order.
func (k Kind) Sections(order int) int {
	if order <= 0 {
		return 0
	}

	switch k {
	case BandPass, BandStop:
		return order
	default:
		return (order + 1) / 2
	}
}

// Digitize moves the analog prototype to the target and maps it to the z
// plane with the bilinear transform. It returns the biquad cascade and the
// gain that restores the prototype's DC magnitude at the digital image of
// analog DC.
//
// Stable prototypes always yield sections with poles inside the unit circle.
func Digitize(proto layout.Layout, t Target) ([]biquad.Coefficients, float64, error) {
	if err := t.Validate(); err != nil {
		return nil, 0, err
	}

	if !proto.Stable() {
		return nil, 0, fmt.Errorf("%w: prototype has no poles or an unstable pole", ErrInvalidTarget)
	}

	m := newMapping(t)
	pairs := make([]biquad.PoleZeroPair, 0, t.Kind.Sections(proto.NumPoles()))
	for _, p := range proto.Pairs() {
		pairs = m.appendPair(pairs, p)
	}

	sections := make([]biquad.Coefficients, len(pairs))
	for i := range pairs {
		sections[i] = biquad.FromPoleZeroPair(pairs[i])
	}

	want := cmplx.Abs(proto.Response(0))
	got := 1.0
	z := cmplx.Rect(1, m.normalAngle)
	for i := range sections {
		got *= cmplx.Abs(sections[i].At(z))
	}

	if got == 0 || !core.IsFinite(got) || !core.IsFinite(want) {
		return nil, 0, fmt.Errorf("%w: cascade cannot be normalized", ErrInvalidTarget)
	}

	return sections, want / got, nil
}
