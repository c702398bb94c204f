// Package generic provides the portable biquad block kernel.
package generic

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Default.Add(registry.Kernel{
		Name:  "generic",
		Level: cpu.SIMDNone,
		Run:   Run,
	})
}

// Run is the one-sample-per-iteration reference kernel.
func Run(c registry.Coefficients, st registry.State, buf []float64) registry.State {
	d0, d1 := st[0], st[1]
	for i, x := range buf {
		y := c.B0*x + d0
		d0 = c.B1*x - c.A1*y + d1
		d1 = c.B2*x - c.A2*y
		buf[i] = y
	}
	return registry.State{d0, d1}
}
