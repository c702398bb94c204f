// Package design computes Chebyshev Type II (inverse Chebyshev) IIR filter
// coefficients.
//
// Two analog prototypes are provided: [AnalogLowPass], maximally flat at DC
// with an equiripple stopband beyond 1 rad/s, and [AnalogLowShelf], its
// shelving counterpart. The seven shape designers ([LowPass], [HighPass],
// [BandPass], [BandStop], [LowShelf], [HighShelf], [BandShelf]) validate
// their arguments, build the matching prototype and digitize it with
// dsp/filter/transform. [Design] dispatches the same work from a parameter
// record.
//
// For the plain shapes the given frequency is the stopband edge. Band
// shapes double the prototype order: an order n bandpass has 2n poles.
//
// The results are [Cascade] values ready for dsp/filter/biquad. For
// streaming filters with reserved storage see dsp/filter/cheby2.
package design
