// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

import (
	"github.com/mtsounding/mt1d/gn"
	"github.com/mtsounding/mt1d/jacobian"
	"github.com/mtsounding/mt1d/reg"
)

// Default parameter values, centralised here rather than duplicated
// between this struct and the coordinator.
const (
	DefaultM                   = 40
	DefaultNFreq               = 61
	DefaultMaxIter             = 20
	DefaultTolDm               = 1e-4
	DefaultLambda              = 1.0
	DefaultEpsilon             = 1e-5
	DefaultFirstLayerThickness = 10.0
	DefaultThicknessGrowth     = 1.2
	DefaultInitLogRho          = 2.0 // log10(100 Ω·m)
	DefaultNoiseLevel          = 0.02
)

// Params configures a call to Invert. The zero value is not directly
// usable; Invert fills unset numeric fields with the Default* constants
// above via withDefaults.
type Params struct {
	M       int // number of layers, >= 3
	NFreq   int // number of periods
	MaxIter int // hard iteration cap

	TolDm   float64 // convergence threshold on ||δm||₂
	Lambda  float64 // Tikhonov weight, >= 0
	Epsilon float64 // Jacobian perturbation size

	FirstLayerThickness float64 // top-layer thickness, metres
	ThicknessGrowth     float64 // per-layer geometric growth factor

	// Optional overrides. If DObs and MTrue are both provided (and
	// correctly sized), they are used verbatim instead of synthesising
	// a three-block truth model. Periods/Omega and
	// LayerThicknesses/LayerDepths are likewise used verbatim when
	// both members of a pair are provided and correctly sized.
	DObs             []float64
	MTrue            []float64
	Periods          []float64
	Omega            []float64
	LayerThicknesses []float64
	LayerDepths      []float64

	RegKind        reg.Kind
	JacobianMethod jacobian.Method
	SolverType     gn.SolverType

	// Seed drives Invert's synthetic-noise draw. GenerateRandomModel
	// takes its own caller-supplied source. The zero value is a valid seed:
	// there is no time-seeded fallback anywhere in this package, so a
	// given Seed always reproduces the same run.
	Seed uint64

	// Observer, if non-nil, is notified once per completed iteration.
	// It must not mutate the coordinator or call back into Invert.
	Observer Observer
}

func (p Params) withDefaults() Params {
	if p.M == 0 {
		p.M = DefaultM
	}
	if p.NFreq == 0 {
		p.NFreq = DefaultNFreq
	}
	if p.MaxIter == 0 {
		p.MaxIter = DefaultMaxIter
	}
	if p.TolDm == 0 {
		p.TolDm = DefaultTolDm
	}
	if p.Lambda == 0 {
		p.Lambda = DefaultLambda
	}
	if p.Epsilon == 0 {
		p.Epsilon = DefaultEpsilon
	}
	if p.FirstLayerThickness == 0 {
		p.FirstLayerThickness = DefaultFirstLayerThickness
	}
	if p.ThicknessGrowth == 0 {
		p.ThicknessGrowth = DefaultThicknessGrowth
	}
	return p
}
