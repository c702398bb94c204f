// Package transform digitizes analog prototypes.
//
// [Digitize] applies one of four s-plane frequency transforms to a
// unit-frequency [layout.Layout] (lowpass scaling, lowpass to highpass
// inversion, and the two band transforms that double the order), maps the
// result to the z plane with the prewarped bilinear transform and groups
// the roots into biquad sections. The cascade gain is chosen so the
// magnitude at the digital image of analog DC equals the prototype's
// magnitude at DC.
package transform
