package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireStable fails t if sections is empty or any pole lies on or outside
// the unit circle.
func RequireStable(t *testing.T, sections []biquad.Coefficients) {
	t.Helper()
	if len(sections) == 0 {
		t.Fatal("no sections")
	}
	for i := range sections {
		for _, p := range sections[i].Poles() {
			if !(cmplx.Abs(p) < 1) {
				t.Fatalf("section %d: pole %v not inside the unit circle", i, p)
			}
		}
	}
}

// RequireBelowDB fails t if the magnitude mag(f) exceeds limitDB (plus a
// 1e-6 dB allowance) at any of freqs.
func RequireBelowDB(t *testing.T, mag func(f float64) float64, limitDB float64, freqs ...float64) {
	t.Helper()
	for _, f := range freqs {
		if got := mag(f); got > limitDB+1e-6 {
			t.Fatalf("%g Hz: %.6f dB above limit %.6f dB", f, got, limitDB)
		}
	}
}

// RequireWithinDB fails t if the magnitude mag(f) leaves [loDB, hiDB]
// (with the same 1e-6 dB allowance as RequireBelowDB) at any of freqs.
func RequireWithinDB(t *testing.T, mag func(f float64) float64, loDB, hiDB float64, freqs ...float64) {
	t.Helper()
	for _, f := range freqs {
		if got := mag(f); got < loDB-1e-6 || got > hiDB+1e-6 {
			t.Fatalf("%g Hz: %.6f dB outside [%.6f, %.6f] dB", f, got, loDB, hiDB)
		}
	}
}

// Span returns the frequencies lo, lo+step, ... up to and including hi.
func Span(lo, hi, step float64) []float64 {
	var out []float64
	for f := lo; f <= hi; f += step {
		out = append(out, f)
	}
	return out
}
