// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gn forms and solves the damped Gauss-Newton normal equations
// (JᵀJ + λLᵀL)δm = Jᵀr for the MT inversion loop, backed by
// gonum.org/v1/gonum/mat's Cholesky and LU factorizations.
package gn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SolverType selects the factorization Solve uses for the damped normal
// equations.
type SolverType int

const (
	// CholeskySolver factors the symmetric positive-definite damped
	// normal matrix directly. The primary path; fails (returns an
	// error, never panics) if the matrix is not positive definite.
	CholeskySolver SolverType = iota
	// LUSolver factors with partial pivoting. Used as the fallback when
	// CholeskySolver's factorization is rejected.
	LUSolver
)

// JTJ returns JᵀJ as a dense M x M symmetric matrix, via SymOuterK — the
// gonum idiom for a symmetric rank-k update of Jᵀ (equivalent to the
// source's cblas_dsyrk call).
func JTJ(j *mat.Dense) *mat.SymDense {
	_, m := j.Dims()
	out := mat.NewSymDense(m, nil)
	out.SymOuterK(1, j.T())
	return out
}

// JTr returns Jᵀr as a length-M vector, via a general matrix-vector
// product (the source's cblas_dgemv call).
func JTr(j *mat.Dense, r []float64) *mat.VecDense {
	_, m := j.Dims()
	out := mat.NewVecDense(m, nil)
	out.MulVec(j.T(), mat.NewVecDense(len(r), r))
	_ = m
	return out
}

// Solver solves the damped normal equations for a Gauss-Newton step.
type Solver struct {
	// Type selects the primary factorization. CholeskySolver always
	// falls back to LU on factorization failure; LUSolver does not
	// (there is nothing weaker to fall back to).
	Type SolverType
}

// Solve computes δm solving (jtj + λ·ltl)·δm = jtr, returning an error
// if neither Cholesky nor the LU fallback can factor the resulting
// matrix, or if lambda is negative or non-finite. Solve never panics on
// a numerically singular system — singularity is reported through the
// returned error, not a crash.
func (s Solver) Solve(jtj, ltl *mat.SymDense, lambda float64, jtr *mat.VecDense) (*mat.VecDense, error) {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		return nil, errInvalidLambda
	}
	m := jtr.Len()

	a := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			a.SetSym(i, j, jtj.At(i, j)+lambda*ltl.At(i, j))
		}
	}

	dm := mat.NewVecDense(m, nil)

	if s.Type == CholeskySolver {
		var chol mat.Cholesky
		if chol.Factorize(a) {
			if err := chol.SolveVecTo(dm, jtr); err == nil {
				return dm, nil
			}
		}
		// fall through to LU
	}

	var lu mat.LU
	lu.Factorize(a)
	if err := lu.SolveVecTo(dm, false, jtr); err != nil {
		return nil, errSingular
	}
	return dm, nil
}
