// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reg builds the model-space roughening operator L used to
// Tikhonov-regularise the Gauss-Newton inversion, and its normal-equation
// contribution LᵀL.
package reg

import "gonum.org/v1/gonum/mat"

// Kind selects the roughening operator built by BuildL.
type Kind int

const (
	// Smoothness is the second-difference operator: rows [1, -2, 1]
	// sliding over consecutive triples, shape (M-2) x M. Default.
	Smoothness Kind = iota
	// Flatness is the first-difference operator: rows [-1, 1], shape
	// (M-1) x M.
	Flatness
	// MinimumNorm is the identity operator, shape M x M.
	MinimumNorm
)

// Rows returns the row count of L for m parameters under kind.
func Rows(kind Kind, m int) int {
	switch kind {
	case Flatness:
		return m - 1
	case MinimumNorm:
		return m
	default:
		return m - 2
	}
}

// BuildL constructs the roughening operator L for m model parameters.
func BuildL(kind Kind, m int) *mat.Dense {
	rows := Rows(kind, m)
	l := mat.NewDense(rows, m, nil)
	switch kind {
	case Flatness:
		for i := 0; i < rows; i++ {
			l.Set(i, i, -1)
			l.Set(i, i+1, 1)
		}
	case MinimumNorm:
		for i := 0; i < rows; i++ {
			l.Set(i, i, 1)
		}
	default: // Smoothness
		for i := 0; i < rows; i++ {
			l.Set(i, i, 1)
			l.Set(i, i+1, -2)
			l.Set(i, i+2, 1)
		}
	}
	return l
}

// BuildLTL returns LᵀL for m parameters under kind, a dense, symmetric,
// positive-semidefinite M x M matrix formed once and reused for every
// Gauss-Newton iteration since it depends only on m and kind, never on
// the current model.
func BuildLTL(kind Kind, m int) *mat.SymDense {
	l := BuildL(kind, m)
	ltl := mat.NewSymDense(m, nil)
	ltl.SymOuterK(1, l.T())
	return ltl
}
