// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mt1d holds the shared data model for the 1-D magnetotelluric
// forward and inversion packages: layered earth models, their layer
// geometry, and the interleaved response-vector layout. Sibling packages
// (freq, forward, jacobian, reg, gn, invert) operate on these types but
// own no state of their own.
package mt1d

import "math"

// Mu0 is the magnetic permeability of free space, in henries per metre.
const Mu0 = 4e-7 * math.Pi

// LayeredModel is an ordered sequence of M layers of a 1-D earth. Layer i
// has thickness H[i] (metres) and log-resistivity M[i] = log10(ρ_i), with
// ρ_i in Ω·m. The last layer is a half-space: its thickness is carried
// for symmetry with the others but is never used in the recursion.
type LayeredModel struct {
	H []float64 // thickness, metres; H[last] unused by ForwardSolver
	M []float64 // log10(resistivity)
}

// NumLayers returns the number of layers.
func (lm LayeredModel) NumLayers() int { return len(lm.M) }

// Validate reports whether lm satisfies the data-model invariants: equal
// length H and M, at least 3 layers, all H finite and positive, and all M
// finite.
func (lm LayeredModel) Validate() error {
	if len(lm.H) != len(lm.M) {
		return ErrInvalidConfiguration
	}
	if len(lm.M) < 3 {
		return ErrInvalidConfiguration
	}
	for i, h := range lm.H {
		if !(h > 0) || math.IsInf(h, 0) || math.IsNaN(h) {
			return ErrInvalidConfiguration
		}
		if math.IsInf(lm.M[i], 0) || math.IsNaN(lm.M[i]) {
			return ErrInvalidConfiguration
		}
	}
	return nil
}

// Depths returns the cumulative depth to the top of each layer, starting
// at 0 for the surface.
func Depths(h []float64) []float64 {
	depths := make([]float64, len(h))
	d := 0.0
	for i, hi := range h {
		depths[i] = d
		d += hi
	}
	return depths
}

// LayerThicknesses builds a geometrically growing thickness profile:
// H[0] = first, H[i] = H[i-1]*growth, together with the cumulative
// top-of-layer depths.
func LayerThicknesses(m int, first, growth float64) (h, depths []float64) {
	h = make([]float64, m)
	depths = make([]float64, m)
	thickness := first
	depth := 0.0
	for i := 0; i < m; i++ {
		h[i] = thickness
		depths[i] = depth
		depth += thickness
		thickness *= growth
	}
	return h, depths
}

// Response is the MT data vector in interleaved wire layout: for
// frequency index k, element 2k is log10(ρ_a(T_k)) and element 2k+1 is
// the phase φ(T_k) in degrees. Len is always 2*nFreq.
type Response []float64

// NewResponse allocates a Response sized for nFreq frequencies.
func NewResponse(nFreq int) Response { return make(Response, 2*nFreq) }

// NFreq returns the number of frequencies represented, i.e. len(r)/2.
func (r Response) NFreq() int { return len(r) / 2 }

// LogRhoA returns log10(apparent resistivity) at frequency index k.
func (r Response) LogRhoA(k int) float64 { return r[2*k] }

// Phase returns the phase in degrees at frequency index k.
func (r Response) Phase(k int) float64 { return r[2*k+1] }

// Set writes the response at frequency index k.
func (r Response) Set(k int, logRhoA, phaseDeg float64) {
	r[2*k] = logRhoA
	r[2*k+1] = phaseDeg
}
