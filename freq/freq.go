// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package freq builds the logarithmically spaced period and angular
// frequency grids used throughout the 1-D MT inversion engine.
package freq

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mtsounding/mt1d"
)

// Generate builds nFreq periods logarithmically spaced between tMin and
// tMax (seconds), and the corresponding angular frequencies
// omega[k] = 2π/periods[k]. It requires nFreq >= 2 and
// 0 < tMin < tMax, returning mt1d.ErrInvalidConfiguration otherwise.
//
// Generate is deterministic: identical arguments produce bit-identical
// output on every call.
func Generate(nFreq int, tMin, tMax float64) (periods, omega []float64, err error) {
	if nFreq < 2 || !(tMin > 0) || !(tMax > tMin) {
		return nil, nil, mt1d.ErrInvalidConfiguration
	}
	periods = floats.LogSpan(make([]float64, nFreq), tMin, tMax)
	omega = make([]float64, nFreq)
	for i, t := range periods {
		omega[i] = 2 * math.Pi / t
	}
	return periods, omega, nil
}

// DefaultTMin and DefaultTMax bound the period range (seconds) used when a caller wants
// the standard sounding band without specifying one explicitly.
const (
	DefaultTMin = 1e-3
	DefaultTMax = 1e3
)

// GenerateDefault is Generate with the standard [DefaultTMin, DefaultTMax]
// period range.
func GenerateDefault(nFreq int) (periods, omega []float64, err error) {
	return Generate(nFreq, DefaultTMin, DefaultTMax)
}
