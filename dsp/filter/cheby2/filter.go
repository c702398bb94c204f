package cheby2

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/cheby2/design"
)

// ErrOrderTooHigh is returned when a setup asks for more poles than the
// filter's capacity. It wraps [design.ErrInvalidArgument].
var ErrOrderTooHigh = fmt.Errorf("%w: requested order exceeds capacity", design.ErrInvalidArgument)

// ErrBufferFormat is returned by ProcessFloatBuffer for buffers that are
// not mono or whose sample rate differs from the configured one.
var ErrBufferFormat = errors.New("cheby2: unsupported buffer format")

// filter is the state shared by every shape: a biquad chain sized for the
// capacity plus the active configuration.
type filter struct {
	shape    design.Shape
	maxOrder int
	chain    *biquad.Chain

	sampleRate float64
	order      int
}

func newFilter(shape design.Shape, maxOrder int) filter {
	return filter{
		shape:    shape,
		maxOrder: maxOrder,
		chain:    biquad.NewChainCapacity(shape.Sections(maxOrder)),
	}
}

// setup validates order against the capacity, designs p and installs the
// result. Nothing is modified unless every step succeeds.
func (f *filter) setup(order int, p design.Params) error {
	if order < 1 {
		return fmt.Errorf("%w: order %d must be at least 1", design.ErrInvalidArgument, order)
	}

	if order > f.maxOrder {
		return fmt.Errorf("%w: order %d, capacity %d", ErrOrderTooHigh, order, f.maxOrder)
	}

	c, err := design.Design(p)
	if err != nil {
		return err
	}

	if err := f.chain.Configure(c.Sections, c.Gain); err != nil {
		return fmt.Errorf("cheby2: %s order %d: %w", f.shape, order, err)
	}

	f.order = order
	f.sampleRate = sampleRateOf(p)

	return nil
}

// ProcessSample filters one sample. An unconfigured filter returns x.
func (f *filter) ProcessSample(x float64) float64 {
	return f.chain.ProcessSample(x)
}

// ProcessBlock filters buf in place.
func (f *filter) ProcessBlock(buf []float64) {
	f.chain.ProcessBlock(buf)
}

// ProcessFloatBuffer filters the samples of a mono buffer in place.
// A zero sample rate in the buffer format is accepted as unspecified.
func (f *filter) ProcessFloatBuffer(buf *audio.FloatBuffer) error {
	if buf == nil {
		return nil
	}

	if buf.Format != nil {
		if buf.Format.NumChannels > 1 {
			return fmt.Errorf("%w: %d channels, want 1", ErrBufferFormat, buf.Format.NumChannels)
		}

		sr := float64(buf.Format.SampleRate)
		if f.Configured() && sr != 0 && sr != f.sampleRate {
			return fmt.Errorf("%w: sample rate %g Hz, filter designed for %g Hz", ErrBufferFormat, sr, f.sampleRate)
		}
	}

	f.chain.ProcessBlock(buf.Data)

	return nil
}

// Reset clears the running state and keeps the coefficients.
func (f *filter) Reset() {
	f.chain.Reset()
}

// Configured reports whether a setup has succeeded.
func (f *filter) Configured() bool {
	return f.order > 0
}

// Order returns the prototype order of the active design, or 0 before the
// first successful setup. Band shapes realize twice as many poles.
func (f *filter) Order() int {
	return f.order
}

// MaxOrder returns the capacity of the filter.
func (f *filter) MaxOrder() int {
	return f.maxOrder
}

// SampleRate returns the sample rate of the active design.
func (f *filter) SampleRate() float64 {
	return f.sampleRate
}

// Response returns the complex frequency response at freqHz. An
// unconfigured filter reports unity.
func (f *filter) Response(freqHz float64) complex128 {
	if !f.Configured() {
		return 1
	}
	return f.chain.Response(freqHz, f.sampleRate)
}

// MagnitudeDB returns the magnitude response at freqHz in dB.
func (f *filter) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz)))
}

// Cascade returns a copy of the active coefficients.
func (f *filter) Cascade() design.Cascade {
	return design.Cascade{
		Sections: f.chain.Coefficients(),
		Gain:     f.chain.Gain(),
	}
}

func sampleRateOf(p design.Params) float64 {
	switch p := p.(type) {
	case design.LowPassParams:
		return p.SampleRate
	case design.HighPassParams:
		return p.SampleRate
	case design.BandPassParams:
		return p.SampleRate
	case design.BandStopParams:
		return p.SampleRate
	case design.LowShelfParams:
		return p.SampleRate
	case design.HighShelfParams:
		return p.SampleRate
	case design.BandShelfParams:
		return p.SampleRate
	default:
		return 0
	}
}
