// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package forward evaluates the 1-D magnetotelluric response of a
// layered earth by upward recursion of the surface impedance. It is the
// only package in this module that touches complex arithmetic, using
// Go's native complex128 in place of the real-pair arithmetic the
// original MKL-based implementation hand-rolled.
package forward

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/mtsounding/mt1d"
)

// cosh2Floor is the |cosh(kh)|² threshold below which a layer is treated
// as effectively infinitely thick: tanh(kh) degenerates to 1+0j and the
// recursion collapses to the half-space impedance of that layer. Matches
// the source's 1e-20 cutoff.
const cosh2Floor = 1e-20

// fallbackRhoA and fallbackPhase are substituted at any frequency whose
// evaluation would otherwise produce a non-finite apparent resistivity
// or phase: non-positive conductivity, non-positive omega, or a
// denominator magnitude below cosh2Floor. This keeps the Gauss-Newton
// loop in invert from ever seeing a NaN.
const (
	fallbackRhoA  = 1e-10
	fallbackPhase = 0.0
)

// conductivity converts log10-resistivity to conductivity: σ = 1/ρ,
// ρ = 10^m = exp(m·ln10). Computed as three elementwise passes over the
// layer count, mirroring the vectorized vdMul+vdExp+vdInv pipeline of
// the MKL original with gonum's floats.Apply.
func conductivity(m []float64) []float64 {
	sigma := make([]float64, len(m))
	copy(sigma, m)
	floats.Scale(math.Ln10, sigma)
	floats.Apply(math.Exp, sigma) // sigma now holds rho = 10^m
	floats.Apply(func(rho float64) float64 { return 1 / rho }, sigma)
	return sigma
}

func finiteOrDefault(x, d float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return d
	}
	return x
}

// tanhComplex computes tanh(z) via the real-exponential/sin-cos identity
// the source uses, rather than math/cmplx.Tanh, so that the cosh2Floor
// degeneracy clamp in the design contract is reproduced exactly.
func tanhComplex(z complex128) complex128 {
	re, im := real(z), imag(z)
	expPos := math.Exp(re)
	expNeg := 1 / expPos
	cosIm, sinIm := math.Cos(im), math.Sin(im)

	expKD := complex(expPos*cosIm, expPos*sinIm)
	expMinusKD := complex(expNeg*cosIm, -expNeg*sinIm)

	sinh := (expKD - expMinusKD) * 0.5
	cosh := (expKD + expMinusKD) * 0.5

	coshMag2 := real(cosh)*real(cosh) + imag(cosh)*imag(cosh)
	if coshMag2 <= cosh2Floor {
		return complex(1, 0)
	}
	return sinh / cosh
}

// intrinsicImpedance returns (1+j)·√(ωμ₀/(2σ)), the intrinsic impedance
// of a uniform medium of conductivity σ at angular frequency ω.
func intrinsicImpedance(omega, sigma float64) complex128 {
	v := math.Sqrt(omega * mt1d.Mu0 / (2 * sigma))
	v = finiteOrDefault(v, fallbackRhoA)
	return complex(v, v)
}

// wavenumber returns (1+j)·√(ωμ₀σ/2), the propagation constant inside a
// medium of conductivity σ.
func wavenumber(omega, sigma float64) complex128 {
	v := math.Sqrt(omega * mt1d.Mu0 * sigma / 2)
	v = finiteOrDefault(v, fallbackRhoA)
	return complex(v, v)
}

// surfaceImpedance computes Z_0(ω) by upward recursion from the
// half-space at the bottom layer to the surface.
func surfaceImpedance(omega float64, sigma, h []float64) complex128 {
	m := len(sigma)
	if m == 0 || omega <= 0 || sigma[m-1] <= 0 {
		return cmplx.NaN() // Solve maps this to the fallback pair
	}
	z := intrinsicImpedance(omega, sigma[m-1])
	for i := m - 2; i >= 0; i-- {
		if sigma[i] <= 0 {
			return cmplx.NaN()
		}
		if h[i] <= 0 {
			continue
		}
		z0 := intrinsicImpedance(omega, sigma[i])
		k := wavenumber(omega, sigma[i])
		tanhKD := tanhComplex(k * complex(h[i], 0))

		numerator := z + z0*tanhKD
		denominator := z0 + z*tanhKD
		denomMag2 := real(denominator)*real(denominator) + imag(denominator)*imag(denominator)
		if denomMag2 <= cosh2Floor {
			return cmplx.NaN()
		}
		z = z0 * (numerator / denominator)
	}
	return z
}

// Solve evaluates the MT response of the layered model (m, h) at every
// angular frequency in omega, writing log10(apparent resistivity) and
// phase (degrees) into the interleaved mt1d.Response layout.
//
// Solve never returns a non-finite value: any frequency whose evaluation
// would overflow or divide by a near-zero denominator is clamped to
// (fallbackRhoA, fallbackPhase).
func Solve(m, h, omega []float64) mt1d.Response {
	sigma := conductivity(m)
	out := mt1d.NewResponse(len(omega))
	for k, w := range omega {
		z := surfaceImpedance(w, sigma, h)
		zMag2 := real(z)*real(z) + imag(z)*imag(z)
		denom := w * mt1d.Mu0

		rhoA := zMag2 / denom
		if denom <= 0 || !isFinite(denom) || !isFinite(zMag2) || !isFinite(rhoA) || rhoA <= 0 {
			rhoA = fallbackRhoA
		}
		phase := cmplx.Phase(z) * 180 / math.Pi
		if !isFinite(phase) {
			phase = fallbackPhase
		}
		out.Set(k, math.Log10(rhoA), phase)
	}
	return out
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
