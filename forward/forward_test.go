// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forward

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func uniformModel(m int, logRho float64) (mLogRho, h []float64) {
	mLogRho = make([]float64, m)
	h = make([]float64, m)
	for i := range mLogRho {
		mLogRho[i] = logRho
		h[i] = 100
	}
	return mLogRho, h
}

func TestUniformHalfspaceIdentity(t *testing.T) {
	t.Parallel()
	logRho := math.Log10(100.0)
	mLogRho, h := uniformModel(5, logRho)
	omega := []float64{2 * math.Pi / 0.01, 2 * math.Pi / 1, 2 * math.Pi / 100}

	resp := Solve(mLogRho, h, omega)
	for k := 0; k < resp.NFreq(); k++ {
		rhoA := math.Pow(10, resp.LogRhoA(k))
		if !floats.EqualWithinAbsOrRel(rhoA, 100, 0, 1e-10) {
			t.Errorf("k=%d: rhoA = %v, want 100", k, rhoA)
		}
		if !floats.EqualWithinAbsOrRel(resp.Phase(k), 45, 1e-8, 1e-8) {
			t.Errorf("k=%d: phase = %v, want 45", k, resp.Phase(k))
		}
	}
}

func TestThicknessIrrelevanceInUniformModel(t *testing.T) {
	t.Parallel()
	logRho := math.Log10(250.0)
	mLogRho, h := uniformModel(6, logRho)
	omega := []float64{1, 10, 1000}

	base := Solve(mLogRho, h, omega)

	scaled := make([]float64, len(h))
	for i, hi := range h {
		scaled[i] = hi * 37.5
	}
	got := Solve(mLogRho, scaled, omega)

	for i := range base {
		if !floats.EqualWithinAbsOrRel(base[i], got[i], 0, 1e-10) {
			t.Errorf("index %d: base=%v scaled=%v not within 1e-10 relative", i, base[i], got[i])
		}
	}
}

func TestForwardResponseIsFiniteAndBounded(t *testing.T) {
	t.Parallel()
	mLogRho := []float64{1, 2, 1.5, 3, 0.5}
	h := []float64{10, 20, 40, 80, 160}
	omega := []float64{1e-3, 1e-1, 1, 10, 1e3}

	resp := Solve(mLogRho, h, omega)
	if floats.HasNaN(resp) {
		t.Fatalf("response contains NaN: %v", []float64(resp))
	}
	for k := 0; k < resp.NFreq(); k++ {
		if lr := resp.LogRhoA(k); lr < -10 || lr > 10 {
			t.Errorf("k=%d: log10(rhoA) = %v out of [-10,10]", k, lr)
		}
		if ph := resp.Phase(k); ph < -180 || ph > 180 {
			t.Errorf("k=%d: phase = %v out of [-180,180]", k, ph)
		}
	}
}

func TestMonotoneHalfspace(t *testing.T) {
	t.Parallel()
	// A single "layer" (M=1) degenerates the recursion straight to the
	// half-space impedance: rhoA should be independent of omega.
	sigma := 1.0 / 50.0
	mLogRho := []float64{math.Log10(1 / sigma)}
	h := []float64{1} // unused for a half-space
	omega := []float64{1e-2, 1, 1e2, 1e4}

	resp := Solve(mLogRho, h, omega)
	for k := 0; k < resp.NFreq(); k++ {
		rhoA := math.Pow(10, resp.LogRhoA(k))
		if !floats.EqualWithinAbsOrRel(rhoA, 1/sigma, 0, 1e-9) {
			t.Errorf("k=%d: rhoA = %v, want %v", k, rhoA, 1/sigma)
		}
		if !floats.EqualWithinAbsOrRel(resp.Phase(k), 45, 1e-8, 1e-8) {
			t.Errorf("k=%d: phase = %v, want 45", k, resp.Phase(k))
		}
	}
}

func TestTwoLayerTextbookCase(t *testing.T) {
	t.Parallel()
	mLogRho := []float64{math.Log10(10), math.Log10(1000)}
	h := []float64{500, 0}
	omega := []float64{2 * math.Pi / 1.0}

	resp := Solve(mLogRho, h, omega)
	logRhoA := resp.LogRhoA(0)
	if !floats.EqualWithinAbsOrRel(logRhoA, 1.72, 0.02, 0) {
		t.Errorf("log10(rhoA) = %v, want ~1.72", logRhoA)
	}
	if phase := resp.Phase(0); !(phase > 45 && phase < 90) {
		t.Errorf("phase = %v, want in (45, 90)", phase)
	}
}
