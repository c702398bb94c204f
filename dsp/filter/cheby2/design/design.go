package design

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/layout"
	"github.com/cwbudde/algo-iir/dsp/filter/transform"
)

// ErrInvalidArgument is returned for out-of-range orders, frequencies,
// widths or attenuations. Every check runs before any synthesis work.
var ErrInvalidArgument = errors.New("cheby2: invalid argument")

// Cascade is a designed filter: biquad sections plus an input gain.
type Cascade struct {
	Sections []biquad.Coefficients
	Gain     float64
}

// Chain returns a new runtime cascade for the design.
func (c Cascade) Chain() *biquad.Chain {
	return biquad.NewChain(c.Sections, biquad.WithGain(c.Gain))
}

// Shape identifies one of the seven response shapes.
type Shape int

const (
	ShapeLowPass Shape = iota
	ShapeHighPass
	ShapeBandPass
	ShapeBandStop
	ShapeLowShelf
	ShapeHighShelf
	ShapeBandShelf
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeLowPass:
		return "lowpass"
	case ShapeHighPass:
		return "highpass"
	case ShapeBandPass:
		return "bandpass"
	case ShapeBandStop:
		return "bandstop"
	case ShapeLowShelf:
		return "lowshelf"
	case ShapeHighShelf:
		return "highshelf"
	case ShapeBandShelf:
		return "bandshelf"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Banded reports whether the shape is realized with a band transform,
// which doubles the order of the prototype.
func (s Shape) Banded() bool {
	return s == ShapeBandPass || s == ShapeBandStop || s == ShapeBandShelf
}

// Sections returns the number of biquad sections a design of this shape
// and order occupies.
func (s Shape) Sections(order int) int {
	if s.Banded() {
		return transform.BandPass.Sections(order)
	}
	return transform.LowPass.Sections(order)
}

// digitize maps the prototype to the target. Target errors are reported
// as ErrInvalidArgument.
func digitize(proto layout.Layout, t transform.Target) (Cascade, error) {
	sections, gain, err := transform.Digitize(proto, t)
	if err != nil {
		return Cascade{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return Cascade{Sections: sections, Gain: gain}, nil
}

func validateSampleRate(sampleRate float64) error {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %g must be positive", ErrInvalidArgument, sampleRate)
	}
	return nil
}

// cutoffTarget validates a cutoff frequency in Hz.
func cutoffTarget(kind transform.Kind, sampleRate, freq float64) (transform.Target, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return transform.Target{}, err
	}

	if !core.IsFinite(freq) || freq <= 0 || freq >= sampleRate/2 {
		return transform.Target{}, fmt.Errorf("%w: frequency %g Hz not in (0, %g)", ErrInvalidArgument, freq, sampleRate/2)
	}

	return transform.Target{Kind: kind, Frequency: freq / sampleRate}, nil
}

// bandTarget validates a center frequency and width in Hz.
func bandTarget(kind transform.Kind, sampleRate, center, width float64) (transform.Target, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return transform.Target{}, err
	}

	if !core.IsFinite(width) || width <= 0 {
		return transform.Target{}, fmt.Errorf("%w: width %g Hz must be positive", ErrInvalidArgument, width)
	}

	lo := center - width/2
	hi := center + width/2
	if !core.IsFinite(center) || lo <= 0 || hi >= sampleRate/2 {
		return transform.Target{}, fmt.Errorf("%w: band [%g, %g] Hz not inside (0, %g)", ErrInvalidArgument, lo, hi, sampleRate/2)
	}

	return transform.Target{Kind: kind, Frequency: center / sampleRate, Width: width / sampleRate}, nil
}
