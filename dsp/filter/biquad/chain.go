package biquad

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// ErrCapacityExceeded is returned when a chain is asked to hold more sections
// than it reserved at construction.
var ErrCapacityExceeded = errors.New("biquad: section count exceeds chain capacity")

// Chain is an ordered cascade of biquad sections processed in series.
// Higher-order designs are realized as one Chain where each second-order
// section feeds into the next.
//
// A Chain created with [NewChainCapacity] reserves its section storage once;
// [Chain.Configure] reuses it and never allocates.
type Chain struct {
	sections []Section
	gain     float64
}

// chainConfig holds options for NewChain.
type chainConfig struct {
	gain     float64
	capacity int
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain sets an overall gain applied to the input before cascading.
// Default is 1.0 (unity gain).
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// WithCapacity reserves storage for at least n sections.
func WithCapacity(n int) ChainOption {
	return func(cfg *chainConfig) {
		if n > cfg.capacity {
			cfg.capacity = n
		}
	}
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1, capacity: len(coeffs)}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Chain{
		sections: make([]Section, len(coeffs), cfg.capacity),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// NewChainCapacity returns an empty chain that can later hold up to n
// sections without reallocating. An empty chain passes input through
// scaled by its gain.
func NewChainCapacity(n int, opts ...ChainOption) *Chain {
	if n < 0 {
		n = 0
	}

	return NewChain(nil, append([]ChainOption{WithCapacity(n)}, opts...)...)
}

// ProcessSample cascades input through all sections in order.
// If gain != 1, the input is scaled before the first section.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}

	if c.gain != 1 {
		vecmath.ScaleBlock(buf, buf, c.gain)
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per full biquad section).
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Capacity returns the number of sections the chain can hold without
// reallocating.
func (c *Chain) Capacity() int {
	return cap(c.sections)
}

// Gain returns the current input gain applied before cascading.
func (c *Chain) Gain() float64 { return c.gain }

// SetGain updates the input gain applied before cascading.
func (c *Chain) SetGain(g float64) { c.gain = g }

// Configure replaces all coefficients and the gain and clears the delay
// lines, so no history of a previous configuration leaks into the new one.
//
// It fails with [ErrCapacityExceeded] when coeffs does not fit the reserved
// storage; the chain is left untouched in that case.
func (c *Chain) Configure(coeffs []Coefficients, gain float64) error {
	if len(coeffs) > cap(c.sections) {
		return ErrCapacityExceeded
	}

	c.sections = c.sections[:len(coeffs)]
	for i := range coeffs {
		c.sections[i] = Section{Coefficients: coeffs[i]}
	}
	c.gain = gain

	return nil
}

// Coefficients returns a copy of the coefficients of every section.
func (c *Chain) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].Coefficients
	}

	return out
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}
