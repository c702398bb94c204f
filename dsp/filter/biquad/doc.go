// Package biquad provides the runtime for cascades of second-order IIR
// sections.
//
// A [Section] implements Direct Form II Transposed processing for one
// second-order section defined by [Coefficients]. A [Chain] cascades
// sections behind an input gain. Chains built with [NewChainCapacity]
// reserve their section storage once; [Chain.Configure] swaps in a new
// design without allocating.
//
// Block processing dispatches to the fastest registered kernel for the
// running CPU. Coefficient design lives in dsp/filter/cheby2/design.
package biquad
