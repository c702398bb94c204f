package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude) with a
// fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// ToneLevelDB returns the peak level in dB of a steady sinusoid, estimated
// from the RMS of buf[skip:]. The tail should span whole periods.
func ToneLevelDB(buf []float64, skip int) float64 {
	if skip >= len(buf) {
		return math.Inf(-1)
	}

	tail := buf[skip:]
	sum := 0.0
	for _, v := range tail {
		sum += v * v
	}

	rms := math.Sqrt(sum / float64(len(tail)))
	return 20 * math.Log10(rms*math.Sqrt2)
}
