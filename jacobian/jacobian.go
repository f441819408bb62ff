// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jacobian computes the sensitivity matrix of the MT forward
// response to the layer log-resistivities by numerical perturbation,
// delegating every forward evaluation to package forward.
package jacobian

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mtsounding/mt1d"
)

// Method selects the finite-difference scheme used by Calculator.
type Method int

const (
	// Forward perturbs each parameter by +ε and differences against the
	// unperturbed response: M forward evaluations per Jacobian.
	Forward Method = iota
	// Central perturbs each parameter by ±ε: 2M forward evaluations per
	// Jacobian, O(ε²) accuracy.
	Central
)

// Calculator computes J = ∂F/∂m by finite differences, where F is
// supplied by the caller (ordinarily forward.Solve bound to a fixed
// thickness profile).
type Calculator struct {
	// Forward evaluates the model response. It must not retain or
	// mutate m.
	Forward func(m []float64) mt1d.Response

	Method Method
}

// Compute returns J, shape (len(d)) x (len(m)), where d is the response
// already evaluated at m (avoiding a redundant forward.Solve call in the
// Forward-difference case). epsilon must be positive and finite.
//
// Compute never mutates m: perturbation is applied to and restored on a
// local copy. Any element whose finite-difference quotient is
// non-finite is written as 0, degrading the matrix's rank gracefully
// rather than poisoning the normal equations built downstream.
func (c Calculator) Compute(m []float64, d mt1d.Response, epsilon float64) *mat.Dense {
	if epsilon <= 0 || math.IsNaN(epsilon) || math.IsInf(epsilon, 0) {
		panic("jacobian: epsilon must be positive and finite")
	}
	nData, nParam := len(d), len(m)
	j := mat.NewDense(nData, nParam, nil)

	mPerturbed := make([]float64, nParam)
	copy(mPerturbed, m)

	switch c.Method {
	case Central:
		for col := 0; col < nParam; col++ {
			mPerturbed[col] = m[col] + epsilon
			dPos := c.Forward(mPerturbed)
			mPerturbed[col] = m[col] - epsilon
			dNeg := c.Forward(mPerturbed)
			mPerturbed[col] = m[col]

			denom := 2 * epsilon
			for row := 0; row < nData; row++ {
				v := (dPos[row] - dNeg[row]) / denom
				if math.IsNaN(v) || math.IsInf(v, 0) {
					v = 0
				}
				j.Set(row, col, v)
			}
		}
	default: // Forward
		for col := 0; col < nParam; col++ {
			mPerturbed[col] = m[col] + epsilon
			dPos := c.Forward(mPerturbed)
			mPerturbed[col] = m[col]

			for row := 0; row < nData; row++ {
				v := (dPos[row] - d[row]) / epsilon
				if math.IsNaN(v) || math.IsInf(v, 0) {
					v = 0
				}
				j.Set(row, col, v)
			}
		}
	}
	return j
}
