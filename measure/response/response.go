package response

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Errors returned by the analyzer.
var (
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("response: fft size must be a power of two >= 16")
	ErrInvalidFrequency  = errors.New("response: frequency outside [0, nyquist]")
)

// Processor is a streaming filter.
type Processor interface {
	ProcessSample(x float64) float64
	Reset()
}

// Option configures an [Analyzer].
type Option func(*config)

type config struct {
	fftSize int
	settle  int
}

// WithFFTSize sets the impulse response length and FFT size. Default 8192.
func WithFFTSize(n int) Option {
	return func(c *config) { c.fftSize = n }
}

// WithSettle skips n extra samples of zero input after the processor is
// reset, before the impulse is applied. Default 0.
func WithSettle(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.settle = n
		}
	}
}

// Analyzer measures magnitude responses at a fixed sample rate.
type Analyzer struct {
	sampleRate float64
	cfg        config
	fft        *fourier.FFT
}

// NewAnalyzer returns an analyzer for the given sample rate.
func NewAnalyzer(sampleRate float64, opts ...Option) (*Analyzer, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	cfg := config{fftSize: 8192}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.fftSize < 16 || cfg.fftSize&(cfg.fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, cfg.fftSize)
	}

	return &Analyzer{
		sampleRate: sampleRate,
		cfg:        cfg,
		fft:        fourier.NewFFT(cfg.fftSize),
	}, nil
}

// FFTSize returns the transform length.
func (a *Analyzer) FFTSize() int { return a.cfg.fftSize }

// BinFrequency returns the center frequency of bin k in Hz.
func (a *Analyzer) BinFrequency(k int) float64 {
	return float64(k) * a.sampleRate / float64(a.cfg.fftSize)
}

// Bin returns the bin nearest to freqHz.
func (a *Analyzer) Bin(freqHz float64) (int, error) {
	if freqHz < 0 || freqHz > a.sampleRate/2 || math.IsNaN(freqHz) {
		return 0, fmt.Errorf("%w: %g Hz", ErrInvalidFrequency, freqHz)
	}
	return int(math.Round(freqHz * float64(a.cfg.fftSize) / a.sampleRate)), nil
}

// ImpulseResponse resets p and captures FFTSize samples of its response
// to a unit impulse. p is reset again afterwards.
func (a *Analyzer) ImpulseResponse(p Processor) []float64 {
	p.Reset()
	for range a.cfg.settle {
		p.ProcessSample(0)
	}

	ir := make([]float64, a.cfg.fftSize)
	ir[0] = p.ProcessSample(1)
	for i := 1; i < len(ir); i++ {
		ir[i] = p.ProcessSample(0)
	}

	p.Reset()

	return ir
}

// Magnitude returns the linear magnitude of p for bins 0..FFTSize/2.
func (a *Analyzer) Magnitude(p Processor) []float64 {
	coeffs := a.fft.Coefficients(nil, a.ImpulseResponse(p))

	re := make([]float64, len(coeffs))
	im := make([]float64, len(coeffs))
	for i, c := range coeffs {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, len(coeffs))
	vecmath.Magnitude(mag, re, im)

	return mag
}

// MagnitudeDB returns the magnitude of p in dB for bins 0..FFTSize/2.
func (a *Analyzer) MagnitudeDB(p Processor) []float64 {
	mag := a.Magnitude(p)
	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}
	return mag
}

// MagnitudeDBAt measures p and returns its magnitude in dB at the bin
// nearest each of freqs.
func (a *Analyzer) MagnitudeDBAt(p Processor, freqs ...float64) ([]float64, error) {
	bins := make([]int, len(freqs))
	for i, f := range freqs {
		k, err := a.Bin(f)
		if err != nil {
			return nil, err
		}
		bins[i] = k
	}

	mag := a.Magnitude(p)
	out := make([]float64, len(bins))
	for i, k := range bins {
		out[i] = core.LinearToDB(mag[k])
	}

	return out, nil
}
