//go:build amd64 && !purego

package biquad

import (
	_ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/amd64/avx2" // avx2 kernel
	_ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/amd64/sse2" // sse2 kernel
	_ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/generic"    // portable kernel
)
