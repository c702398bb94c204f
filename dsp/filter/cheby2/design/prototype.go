package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/layout"
)

// AnalogLowPass returns the unit-frequency Chebyshev Type II (inverse
// Chebyshev) lowpass prototype of the given order.
//
// The poles are the reciprocals of the Chebyshev Type I poles
//
//	p_k = 1 / (-sinh(mu)*sin(theta_k) + j*cosh(mu)*cos(theta_k))
//
// with eps = 1/sqrt(10^(stopBandDB/10) - 1), mu = asinh(1/eps)/order and
// theta_k = (2k-1)*pi/(2*order); the conjugate in the upper half plane is
// the one stored. The zeros sit on the imaginary axis at j/cos(theta_k).
// For odd orders the middle angle is pi/2: it yields the real pole
// -1/sinh(mu) and a zero at infinity, so the layout has order finite
// zeros for even orders and order-1 for odd orders.
//
// The response is 0 dB at DC and stays at least stopBandDB below that for
// every frequency at or above 1 rad/s.
func AnalogLowPass(order int, stopBandDB float64) (layout.Layout, error) {
	if err := validatePrototype(order, stopBandDB); err != nil {
		return layout.Layout{}, err
	}

	mu := stretch(order, stopBandDB)
	sinhMu := math.Sinh(mu)
	coshMu := math.Cosh(mu)

	l := layout.New(order)
	for k := 1; k <= order/2; k++ {
		theta := float64(2*k-1) * math.Pi / float64(2*order)
		s, c := math.Sincos(theta)

		pole := 1 / complex(-sinhMu*s, -coshMu*c)
		l.AddConjugatePair(pole, complex(0, 1/c))
	}

	if order%2 == 1 {
		l.AddReal(-1/sinhMu, math.Inf(1))
	}

	l.NormalizeAt(0, 1)

	return l, nil
}

// AnalogLowShelf returns the unit-frequency Chebyshev Type II low-shelf
// prototype of the given order. Its response is exactly G = 10^(gainDB/20)
// at DC and exactly 1 at infinity.
//
// A cut (G <= 1) follows
//
//	|H(jw)|^2 = (G^2*C^2 + b) / (C^2 + e^2),  C = T_order(1/w)
//
// with e^2 = 10^(stopBandDB/10) - 1. The floor b is e^2 for odd orders,
// where T_order(0) = 0, and e^2 + 1 - G^2 for even orders, where
// T_order(0)^2 = 1. Above 1 rad/s the response ripples between 0 dB and
// [ShelfEdgeGain]. A boost is the exact inverse of the cut by -gainDB:
// poles and zeros trade places.
//
// The cut's poles equal those of [AnalogLowPass]. Its zeros use the same
// angles with mu_z = asinh(sqrt(b)/G)/order. A gainDB of 0 makes every zero
// coincide with its pole, which is a flat unity response of the same order.
func AnalogLowShelf(order int, gainDB, stopBandDB float64) (layout.Layout, error) {
	if err := validatePrototype(order, stopBandDB); err != nil {
		return layout.Layout{}, err
	}

	if !core.IsFinite(gainDB) {
		return layout.Layout{}, fmt.Errorf("%w: gain %g dB is not finite", ErrInvalidArgument, gainDB)
	}

	gc := core.DBToLinear(-math.Abs(gainDB))
	e2 := core.DBPowerToLinear(stopBandDB) - 1
	b := shelfFloor(order, gc, e2)

	muP := math.Asinh(math.Sqrt(e2)) / float64(order)
	muZ := math.Asinh(math.Sqrt(b)/gc) / float64(order)

	// A boost swaps the roles of the two root sets.
	if gainDB > 0 {
		muP, muZ = muZ, muP
	}

	sinhP, coshP := math.Sinh(muP), math.Cosh(muP)
	sinhZ, coshZ := math.Sinh(muZ), math.Cosh(muZ)

	l := layout.New(order)
	for k := 1; k <= order/2; k++ {
		theta := float64(2*k-1) * math.Pi / float64(2*order)
		s, c := math.Sincos(theta)

		pole := 1 / complex(-sinhP*s, -coshP*c)
		zero := 1 / complex(-sinhZ*s, -coshZ*c)
		l.AddConjugatePair(pole, zero)
	}

	if order%2 == 1 {
		l.AddReal(-1/sinhP, -1/sinhZ)
	}

	l.NormalizeAt(0, core.DBToLinear(gainDB))

	return l, nil
}

// ShelfEdgeGain returns the linear gain at the far end of the ripple of
// [AnalogLowShelf] above 1 rad/s. The other end is exactly 1. For a cut it
// lies below 1 for odd orders and above 1 for even orders; a boost has the
// reciprocal.
func ShelfEdgeGain(order int, gainDB, stopBandDB float64) float64 {
	gc := core.DBToLinear(-math.Abs(gainDB))
	e2 := core.DBPowerToLinear(stopBandDB) - 1

	var edge2 float64
	if order%2 == 1 {
		// 1 at C = 0, extreme at C^2 = 1.
		edge2 = (gc*gc + e2) / (1 + e2)
	} else {
		// 1 at C^2 = 1, extreme at C = 0.
		edge2 = shelfFloor(order, gc, e2) / e2
	}
	edge := math.Sqrt(edge2)

	if gainDB > 0 {
		return 1 / edge
	}
	return edge
}

// shelfFloor returns the numerator constant b of the cut magnitude that
// makes the response exactly 1 at infinity.
func shelfFloor(order int, gc, e2 float64) float64 {
	if order%2 == 1 {
		return e2
	}
	return e2 + (1 - gc*gc)
}

// stretch returns mu = asinh(1/eps)/order for the given stopband attenuation.
func stretch(order int, stopBandDB float64) float64 {
	eps := 1 / math.Sqrt(core.DBPowerToLinear(stopBandDB)-1)
	return math.Asinh(1/eps) / float64(order)
}

func validatePrototype(order int, stopBandDB float64) error {
	if order < 1 {
		return fmt.Errorf("%w: order %d must be at least 1", ErrInvalidArgument, order)
	}

	if !core.IsFinite(stopBandDB) || stopBandDB <= 0 {
		return fmt.Errorf("%w: stopband attenuation %g dB must be positive", ErrInvalidArgument, stopBandDB)
	}

	return nil
}
