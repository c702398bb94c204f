//go:build purego || (!amd64 && !arm64)

package biquad

import (
	_ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/generic" // portable kernel
)
