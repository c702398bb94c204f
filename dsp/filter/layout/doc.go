// Package layout holds s-plane pole/zero patterns used as analog prototypes.
//
// A [Layout] stores conjugate pairs implicitly (only the upper half plane
// member is kept) plus at most one real entry for odd orders. Prototype
// designers in dsp/filter/cheby2/design fill a Layout; dsp/filter/transform
// maps it to a digital biquad cascade.
package layout
