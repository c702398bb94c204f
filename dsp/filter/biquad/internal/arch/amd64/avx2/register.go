//go:build amd64 && !purego

// Package avx2 registers the biquad block kernel for AVX2 CPUs.
package avx2

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Default.Add(registry.Kernel{
		Name:  "avx2",
		Level: cpu.SIMDAVX2,
		Rank:  20,
		Run:   run,
	})
}

// run unrolls four samples per iteration.
func run(c registry.Coefficients, st registry.State, buf []float64) registry.State {
	b0, b1, b2, a1, a2 := c.B0, c.B1, c.B2, c.A1, c.A2
	d0, d1 := st[0], st[1]

	step := func(x float64) float64 {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		return y
	}

	n := len(buf) &^ 3
	for i := 0; i < n; i += 4 {
		blk := buf[i : i+4 : i+4]
		blk[0] = step(blk[0])
		blk[1] = step(blk[1])
		blk[2] = step(blk[2])
		blk[3] = step(blk[3])
	}

	for i := n; i < len(buf); i++ {
		buf[i] = step(buf[i])
	}

	return registry.State{d0, d1}
}
