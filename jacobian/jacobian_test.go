// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jacobian

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/mtsounding/mt1d"
	"github.com/mtsounding/mt1d/forward"
)

func testModel() (m, h []float64) {
	m = []float64{2.0, 1.5, 2.5, 1.0, 2.2}
	h = []float64{10, 20, 40, 80, 160}
	return m, h
}

func forwardFunc(h, omega []float64) func([]float64) mt1d.Response {
	return func(m []float64) mt1d.Response { return forward.Solve(m, h, omega) }
}

func TestComputeMatchesDirectFiniteDifference(t *testing.T) {
	t.Parallel()
	m, h := testModel()
	omega := []float64{1e-2, 1, 1e2}
	f := forwardFunc(h, omega)
	d := f(m)

	const eps = 1e-5
	calc := Calculator{Forward: f, Method: Forward}
	j := calc.Compute(m, d, eps)

	for col := 0; col < len(m); col++ {
		perturbed := append([]float64(nil), m...)
		perturbed[col] += eps
		dPlus := f(perturbed)
		for row := 0; row < len(d); row++ {
			want := (dPlus[row] - d[row]) / eps
			got := j.At(row, col)
			if !floats.EqualWithinAbsOrRel(got, want, 1e-8, 1e-8) {
				t.Errorf("J[%d][%d] = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestCentralAgreesWithForwardToFirstOrder(t *testing.T) {
	t.Parallel()
	m, h := testModel()
	omega := []float64{1, 10}
	f := forwardFunc(h, omega)
	d := f(m)

	const eps = 1e-5
	jFwd := Calculator{Forward: f, Method: Forward}.Compute(m, d, eps)
	jCen := Calculator{Forward: f, Method: Central}.Compute(m, d, eps)

	r, c := jFwd.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !floats.EqualWithinAbsOrRel(jFwd.At(i, j), jCen.At(i, j), 1e-3, 1e-3) {
				t.Errorf("J[%d][%d]: forward=%v central=%v diverge beyond O(eps)", i, j, jFwd.At(i, j), jCen.At(i, j))
			}
		}
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	m, h := testModel()
	mCopy := append([]float64(nil), m...)
	omega := []float64{1, 10}
	f := forwardFunc(h, omega)
	d := f(m)

	Calculator{Forward: f}.Compute(m, d, 1e-5)
	for i := range m {
		if m[i] != mCopy[i] {
			t.Fatalf("Compute mutated m[%d]: %v -> %v", i, mCopy[i], m[i])
		}
	}
}

func TestComputeZeroesNonFiniteQuotient(t *testing.T) {
	t.Parallel()
	m := []float64{1, 2}
	d := mt1d.Response{0, 0}
	calc := Calculator{Forward: func(x []float64) mt1d.Response {
		return mt1d.Response{math.Inf(1), math.NaN()}
	}}
	j := calc.Compute(m, d, 1e-5)
	r, c := j.Dims()
	for i := 0; i < r; i++ {
		for k := 0; k < c; k++ {
			if v := j.At(i, k); v != 0 {
				t.Errorf("J[%d][%d] = %v, want 0 for non-finite quotient", i, k, v)
			}
		}
	}
}

func TestComputePanicsOnBadEpsilon(t *testing.T) {
	t.Parallel()
	for _, eps := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("epsilon=%v: want panic", eps)
				}
			}()
			Calculator{Forward: func(m []float64) mt1d.Response { return mt1d.Response{0} }}.
				Compute([]float64{1}, mt1d.Response{0}, eps)
		}()
	}
}
