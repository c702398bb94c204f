// Package cheby2 provides streaming Chebyshev Type II (inverse Chebyshev)
// filters with a capacity fixed at construction.
//
// Each shape is a generic type over a [Capacity] such as [Order4]. The
// biquad storage for the capacity is reserved once by the constructor;
// reconfiguring with Setup or SetupOrder never grows it, and a failed
// setup leaves the running filter untouched.
//
//	lp := cheby2.NewLowPass[cheby2.Order4]()
//	if err := lp.Setup(48000, 1000, 40); err != nil {
//		return err
//	}
//	lp.ProcessBlock(buf)
//
// The responses are maximally flat in the passband with an equiripple
// stopband. For the plain shapes the cutoff is the stopband edge: at and
// beyond it the response is at least stopBandDB down. The coefficient math
// lives in dsp/filter/cheby2/design.
package cheby2
