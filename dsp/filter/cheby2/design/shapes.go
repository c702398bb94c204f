package design

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/transform"
)

// Params is one of the shape parameter records: [LowPassParams],
// [HighPassParams], [BandPassParams], [BandStopParams], [LowShelfParams],
// [HighShelfParams] or [BandShelfParams].
type Params interface {
	Shape() Shape
	params()
}

// LowPassParams describes a lowpass. Cutoff is the stopband edge in Hz:
// at and above it the response is at least StopBandDB down.
type LowPassParams struct {
	Order      int
	SampleRate float64
	Cutoff     float64
	StopBandDB float64
}

// HighPassParams describes a highpass. Cutoff is the stopband edge in Hz:
// at and below it the response is at least StopBandDB down.
type HighPassParams struct {
	Order      int
	SampleRate float64
	Cutoff     float64
	StopBandDB float64
}

// BandPassParams describes a bandpass of 2*Order poles. The band
// [Center-Width/2, Center+Width/2] in Hz is where the passband ends.
type BandPassParams struct {
	Order      int
	SampleRate float64
	Center     float64
	Width      float64
	StopBandDB float64
}

// BandStopParams describes a bandstop of 2*Order poles. Inside the band
// [Center-Width/2, Center+Width/2] the response is at least StopBandDB down.
type BandStopParams struct {
	Order      int
	SampleRate float64
	Center     float64
	Width      float64
	StopBandDB float64
}

// LowShelfParams describes a low shelf: GainDB below Cutoff, 0 dB above.
type LowShelfParams struct {
	Order      int
	SampleRate float64
	Cutoff     float64
	GainDB     float64
	StopBandDB float64
}

// HighShelfParams describes a high shelf: GainDB above Cutoff, 0 dB below.
type HighShelfParams struct {
	Order      int
	SampleRate float64
	Cutoff     float64
	GainDB     float64
	StopBandDB float64
}

// BandShelfParams describes a band shelf of 2*Order poles: GainDB inside
// the band, 0 dB outside.
type BandShelfParams struct {
	Order      int
	SampleRate float64
	Center     float64
	Width      float64
	GainDB     float64
	StopBandDB float64
}

func (LowPassParams) Shape() Shape   { return ShapeLowPass }
func (HighPassParams) Shape() Shape  { return ShapeHighPass }
func (BandPassParams) Shape() Shape  { return ShapeBandPass }
func (BandStopParams) Shape() Shape  { return ShapeBandStop }
func (LowShelfParams) Shape() Shape  { return ShapeLowShelf }
func (HighShelfParams) Shape() Shape { return ShapeHighShelf }
func (BandShelfParams) Shape() Shape { return ShapeBandShelf }

func (LowPassParams) params()   {}
func (HighPassParams) params()  {}
func (BandPassParams) params()  {}
func (BandStopParams) params()  {}
func (LowShelfParams) params()  {}
func (HighShelfParams) params() {}
func (BandShelfParams) params() {}

// Design synthesizes the cascade described by p.
func Design(p Params) (Cascade, error) {
	switch p := p.(type) {
	case LowPassParams:
		return LowPass(p.Order, p.SampleRate, p.Cutoff, p.StopBandDB)
	case HighPassParams:
		return HighPass(p.Order, p.SampleRate, p.Cutoff, p.StopBandDB)
	case BandPassParams:
		return BandPass(p.Order, p.SampleRate, p.Center, p.Width, p.StopBandDB)
	case BandStopParams:
		return BandStop(p.Order, p.SampleRate, p.Center, p.Width, p.StopBandDB)
	case LowShelfParams:
		return LowShelf(p.Order, p.SampleRate, p.Cutoff, p.GainDB, p.StopBandDB)
	case HighShelfParams:
		return HighShelf(p.Order, p.SampleRate, p.Cutoff, p.GainDB, p.StopBandDB)
	case BandShelfParams:
		return BandShelf(p.Order, p.SampleRate, p.Center, p.Width, p.GainDB, p.StopBandDB)
	default:
		return Cascade{}, fmt.Errorf("%w: unsupported parameters %T", ErrInvalidArgument, p)
	}
}

// LowPass designs an order-pole lowpass with the stopband starting at cutoff Hz.
func LowPass(order int, sampleRate, cutoff, stopBandDB float64) (Cascade, error) {
	return plain(transform.LowPass, order, sampleRate, cutoff, 0, stopBandDB)
}

// HighPass designs an order-pole highpass with the stopband ending at cutoff Hz.
func HighPass(order int, sampleRate, cutoff, stopBandDB float64) (Cascade, error) {
	return plain(transform.HighPass, order, sampleRate, cutoff, 0, stopBandDB)
}

// BandPass designs a 2*order-pole bandpass centered at center Hz.
func BandPass(order int, sampleRate, center, width, stopBandDB float64) (Cascade, error) {
	return plain(transform.BandPass, order, sampleRate, center, width, stopBandDB)
}

// BandStop designs a 2*order-pole bandstop centered at center Hz.
func BandStop(order int, sampleRate, center, width, stopBandDB float64) (Cascade, error) {
	return plain(transform.BandStop, order, sampleRate, center, width, stopBandDB)
}

// LowShelf designs an order-pole low shelf with gainDB below cutoff Hz.
func LowShelf(order int, sampleRate, cutoff, gainDB, stopBandDB float64) (Cascade, error) {
	return shelf(transform.LowPass, order, sampleRate, cutoff, 0, gainDB, stopBandDB)
}

// HighShelf designs an order-pole high shelf with gainDB above cutoff Hz.
func HighShelf(order int, sampleRate, cutoff, gainDB, stopBandDB float64) (Cascade, error) {
	return shelf(transform.HighPass, order, sampleRate, cutoff, 0, gainDB, stopBandDB)
}

// BandShelf designs a 2*order-pole band shelf with gainDB inside the band.
func BandShelf(order int, sampleRate, center, width, gainDB, stopBandDB float64) (Cascade, error) {
	return shelf(transform.BandPass, order, sampleRate, center, width, gainDB, stopBandDB)
}

func plain(kind transform.Kind, order int, sampleRate, freq, width, stopBandDB float64) (Cascade, error) {
	if err := validatePrototype(order, stopBandDB); err != nil {
		return Cascade{}, err
	}

	t, err := target(kind, sampleRate, freq, width)
	if err != nil {
		return Cascade{}, err
	}

	proto, err := AnalogLowPass(order, stopBandDB)
	if err != nil {
		return Cascade{}, err
	}

	return digitize(proto, t)
}

func shelf(kind transform.Kind, order int, sampleRate, freq, width, gainDB, stopBandDB float64) (Cascade, error) {
	if err := validatePrototype(order, stopBandDB); err != nil {
		return Cascade{}, err
	}

	if !core.IsFinite(gainDB) {
		return Cascade{}, fmt.Errorf("%w: gain %g dB is not finite", ErrInvalidArgument, gainDB)
	}

	t, err := target(kind, sampleRate, freq, width)
	if err != nil {
		return Cascade{}, err
	}

	proto, err := AnalogLowShelf(order, gainDB, stopBandDB)
	if err != nil {
		return Cascade{}, err
	}

	return digitize(proto, t)
}

func target(kind transform.Kind, sampleRate, freq, width float64) (transform.Target, error) {
	if kind == transform.BandPass || kind == transform.BandStop {
		return bandTarget(kind, sampleRate, freq, width)
	}
	return cutoffTarget(kind, sampleRate, freq)
}
