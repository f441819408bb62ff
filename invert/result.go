// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

import "github.com/mtsounding/mt1d"

// Result carries the models at each stage, the discretisation used, the
// observed and final synthetic data, both convergence histories, and
// the termination status of one Invert call.
type Result struct {
	MTrue  []float64 // truth model, if self-test mode synthesised or supplied one
	MInit  []float64 // initial (uniform prior) model
	MFinal []float64 // model at termination

	LayerThicknesses []float64
	LayerDepths      []float64
	Periods          []float64
	Omega            []float64

	DObs mt1d.Response // observed data
	DSyn mt1d.Response // synthetic data at MFinal

	ResidualHistory []float64 // ||r||₂ per completed iteration
	DmNormHistory   []float64 // ||δm||₂ per completed iteration

	NIterations  int
	Status       Status
	Success      bool
	ErrorMessage string
}
