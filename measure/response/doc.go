// Package response measures the magnitude response of a streaming filter.
//
// A [Analyzer] feeds a unit impulse through any [Processor], transforms the
// captured impulse response with an FFT and reports the magnitude per bin.
// It is the numerical counterpart of the analytic Response methods in
// dsp/filter/biquad and dsp/filter/cheby2.
package response
