package biquad

import "math/cmplx"

// PoleZeroPair stores the two poles and two zeros of one biquad section.
// For first-order sections, the second pole/zero is 0.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleZeroPair returns both poles and zeros for a single section.
func (c *Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{
		Poles: c.Poles(),
		Zeros: c.Zeros(),
	}
}

// FromPoleZeroPair builds the section whose denominator roots are pz.Poles
// and numerator roots are pz.Zeros, with a monic numerator (B0 = 1).
//
// Each root pair must be either complex conjugates or two real values so the
// coefficients are real. A zero-valued second root yields a first-order
// section (B2 = A2 = 0).
func FromPoleZeroPair(pz PoleZeroPair) Coefficients {
	p0, p1 := pz.Poles[0], pz.Poles[1]
	z0, z1 := pz.Zeros[0], pz.Zeros[1]

	return Coefficients{
		B0: 1,
		B1: -real(z0 + z1),
		B2: real(z0 * z1),
		A1: -real(p0 + p1),
		A2: real(p0 * p1),
	}
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
