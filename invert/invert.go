// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package invert coordinates the Gauss-Newton inversion loop: it wires
// together freq, forward, jacobian, reg and gn into the iterate-until
// converged/cancelled/exhausted state machine, and owns the synthetic
// self-test data generation used when a caller supplies no observed
// data of its own.
package invert

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mtsounding/mt1d"
	"github.com/mtsounding/mt1d/forward"
	"github.com/mtsounding/mt1d/freq"
	"github.com/mtsounding/mt1d/gn"
	"github.com/mtsounding/mt1d/jacobian"
	"github.com/mtsounding/mt1d/reg"
)

// blockLogRho is the three-block truth-model resistivity profile,
// Ω·m: a 100 Ω·m near-surface layer, a 10 Ω·m conductive mid-section
// and a 1000 Ω·m resistive basement.
var blockLogRho = [3]float64{math.Log10(100), math.Log10(10), math.Log10(1000)}

// blockLayerCounts splits the standard 40-layer truth model into blocks
// of 5, 10 and 25 layers. For any other M, the same proportions are
// used, rounded down to whole layers with the remainder assigned to the
// final (basement) block.
var blockLayerCounts = [3]int{5, 10, 25}

// threeBlockModel fills a length-m log-resistivity profile with
// blockLogRho, sized either to blockLayerCounts directly (when m == 40)
// or to the same proportions scaled to m.
func threeBlockModel(m int) []float64 {
	out := make([]float64, m)
	n0, n1 := blockLayerCounts[0], blockLayerCounts[1]
	if m != blockLayerCounts[0]+blockLayerCounts[1]+blockLayerCounts[2] {
		n0 = m * blockLayerCounts[0] / 40
		n1 = m * blockLayerCounts[1] / 40
	}
	for i := range out {
		switch {
		case i < n0:
			out[i] = blockLogRho[0]
		case i < n0+n1:
			out[i] = blockLogRho[1]
		default:
			out[i] = blockLogRho[2]
		}
	}
	return out
}

// Invert runs the damped Gauss-Newton loop to recover a layered
// log-resistivity model from (or consistent with) params.DObs.
//
// If params.DObs and params.MTrue are not both supplied, Invert
// synthesises a three-block truth model, forward-models it, and adds
// 2%-relative Gaussian noise (via distuv.Normal seeded from
// params.Seed) to produce DObs — a self-test mode useful for
// demonstrating convergence without external data.
//
// Invert checks ctx for cancellation once per iteration, after the
// model update and before the next forward/Jacobian pass; a cancelled
// context stops the loop and returns a Result with Status == Cancelled
// and an error wrapping mt1d.ErrCancelled whose message includes
// ctx.Err().
func Invert(ctx context.Context, params Params) (Result, error) {
	p := params.withDefaults()

	h, depths, err := resolveGeometry(p)
	if err != nil {
		return Result{Status: InvalidConfig, ErrorMessage: err.Error()}, err
	}
	periods, omega, err := resolveFrequencies(p)
	if err != nil {
		return Result{Status: InvalidConfig, ErrorMessage: err.Error()}, err
	}
	mTrue, dObs, err := resolveObserved(p, h, omega)
	if err != nil {
		return Result{Status: InvalidConfig, ErrorMessage: err.Error()}, err
	}

	mInit := make([]float64, p.M)
	for i := range mInit {
		mInit[i] = DefaultInitLogRho
	}

	if err := (mt1d.LayeredModel{H: h, M: mInit}).Validate(); err != nil {
		return Result{Status: InvalidConfig, ErrorMessage: err.Error()}, err
	}

	ltl := reg.BuildLTL(p.RegKind, p.M)

	jc := jacobian.Calculator{
		Forward: func(m []float64) mt1d.Response { return forward.Solve(m, h, omega) },
		Method:  p.JacobianMethod,
	}
	solver := gn.Solver{Type: p.SolverType}

	m := make([]float64, p.M)
	copy(m, mInit)

	var residualHistory, dmNormHistory []float64
	status := MaxIterReached
	var loopErr error

	for iter := 0; iter < p.MaxIter; iter++ {
		dSyn := forward.Solve(m, h, omega)

		r := make([]float64, len(dObs))
		copy(r, dObs)
		floats.Sub(r, dSyn)
		residualNorm := floats.Norm(r, 2)
		residualHistory = append(residualHistory, residualNorm)

		j := jc.Compute(m, dSyn, p.Epsilon)
		jtj := gn.JTJ(j)
		jtr := gn.JTr(j, r)

		dm, solveErr := solver.Solve(jtj, ltl, p.Lambda, jtr)
		if solveErr != nil {
			status = SolverFailed
			loopErr = fmt.Errorf("%w: %v", mt1d.ErrSolverFailure, solveErr)
			break
		}

		for i := 0; i < dm.Len(); i++ {
			if d := dm.AtVec(i); math.IsNaN(d) || math.IsInf(d, 0) {
				dm.SetVec(i, 0)
			}
		}

		dmNorm := mat.Norm(dm, 2)
		dmNormHistory = append(dmNormHistory, dmNorm)

		mNext := make([]float64, p.M)
		for i := range mNext {
			v := m[i] + dm.AtVec(i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = mInit[i]
			}
			mNext[i] = v
		}
		m = mNext

		if p.Observer != nil {
			p.Observer.OnIteration(iter, residualNorm, dmNorm)
		}

		if dmNorm < p.TolDm {
			status = Converged
			break
		}

		select {
		case <-ctx.Done():
			status = Cancelled
			loopErr = fmt.Errorf("%w: %v", mt1d.ErrCancelled, ctx.Err())
		default:
		}
		if status == Cancelled {
			break
		}
	}

	dSynFinal := forward.Solve(m, h, omega)

	result := Result{
		MTrue:            mTrue,
		MInit:            mInit,
		MFinal:           m,
		LayerThicknesses: h,
		LayerDepths:      depths,
		Periods:          periods,
		Omega:            omega,
		DObs:             dObs,
		DSyn:             dSynFinal,
		ResidualHistory:  residualHistory,
		DmNormHistory:    dmNormHistory,
		NIterations:      len(residualHistory),
		Status:           status,
		Success:          status == Converged || status == MaxIterReached,
	}
	if loopErr != nil {
		result.ErrorMessage = loopErr.Error()
	}
	return result, loopErr
}

func resolveGeometry(p Params) (h, depths []float64, err error) {
	if len(p.LayerThicknesses) == p.M && len(p.LayerDepths) == p.M && p.M > 0 {
		return p.LayerThicknesses, p.LayerDepths, nil
	}
	h, depths = mt1d.LayerThicknesses(p.M, p.FirstLayerThickness, p.ThicknessGrowth)
	return h, depths, nil
}

func resolveFrequencies(p Params) (periods, omega []float64, err error) {
	if len(p.Periods) == p.NFreq && len(p.Omega) == p.NFreq && p.NFreq > 0 {
		return p.Periods, p.Omega, nil
	}
	return freq.GenerateDefault(p.NFreq)
}

// resolveObserved returns (mTrue, dObs): verbatim if both params.MTrue
// and params.DObs are correctly sized, otherwise a synthesised
// three-block truth model forward-modelled and perturbed with
// 2%-relative Gaussian noise.
func resolveObserved(p Params, h, omega []float64) (mTrue, dObs []float64, err error) {
	if len(p.MTrue) == p.M && len(p.DObs) == 2*p.NFreq {
		return p.MTrue, p.DObs, nil
	}

	mTrue = threeBlockModel(p.M)
	clean := forward.Solve(mTrue, h, omega)

	noisy := make([]float64, len(clean))
	copy(noisy, clean)
	src := rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15)
	for i, v := range clean {
		stddev := DefaultNoiseLevel * math.Abs(v)
		if stddev == 0 {
			continue
		}
		noise := distuv.Normal{Mu: 0, Sigma: stddev, Src: src}
		noisy[i] = v + noise.Rand()
	}
	return mTrue, noisy, nil
}
