//go:build amd64 && !purego

// Package sse2 registers the biquad block kernel for SSE2 CPUs.
package sse2

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Default.Add(registry.Kernel{
		Name:  "sse2",
		Level: cpu.SIMDSSE2,
		Rank:  10,
		Run:   run,
	})
}

// run unrolls two samples per iteration. The recursion is serial, so the
// gain comes from keeping the delay line in registers.
func run(c registry.Coefficients, st registry.State, buf []float64) registry.State {
	b0, b1, b2, a1, a2 := c.B0, c.B1, c.B2, c.A1, c.A2
	d0, d1 := st[0], st[1]

	n := len(buf) &^ 1
	for i := 0; i < n; i += 2 {
		x := buf[i]
		y := b0*x + d0
		e0 := b1*x - a1*y + d1
		e1 := b2*x - a2*y
		buf[i] = y

		x = buf[i+1]
		y = b0*x + e0
		d0 = b1*x - a1*y + e1
		d1 = b2*x - a2*y
		buf[i+1] = y
	}

	if n < len(buf) {
		x := buf[n]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[n] = y
	}

	return registry.State{d0, d1}
}
