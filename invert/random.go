// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mtsounding/mt1d"
	"github.com/mtsounding/mt1d/forward"
	"github.com/mtsounding/mt1d/freq"
)

// RandomModelParams configures GenerateRandomModel. FilterCutoff selects
// the Gaussian-smoothing window as a fraction of M; 0 disables smoothing
// and returns the raw uniform draw.
type RandomModelParams struct {
	M            int
	MinRho       float64 // Ω·m
	MaxRho       float64 // Ω·m
	FilterCutoff float64
}

// rescueRangeFraction and rescueTargetFraction govern the range-rescue
// step below: if Gaussian smoothing has compressed the model's dynamic
// range to below rescueRangeFraction of the raw draw's range, the
// smoothed values are rescaled about the raw draw's center to
// rescueTargetFraction of that range, then re-clamped to [logMinRho,
// logMaxRho]. Named rather than re-derived; kept as the source's
// empirical constants.
const (
	rescueRangeFraction  = 0.20
	rescueTargetFraction = 0.45
)

// GenerateRandomModel draws a smoothly varying synthetic log-resistivity
// profile: M values uniform in [log10(MinRho), log10(MaxRho)], passed
// through two passes of a Gaussian-weighted moving average, with a
// range-rescue step if smoothing over-compressed the result.
//
// src supplies every random draw; callers wanting reproducibility should
// construct it from a fixed seed. Invert does not call
// GenerateRandomModel, so Params.Seed has no effect on it.
func GenerateRandomModel(p RandomModelParams, src rand.Source) []float64 {
	m := p.M
	logMinRho := math.Log10(p.MinRho)
	logMaxRho := math.Log10(p.MaxRho)

	draw := distuv.Uniform{Min: logMinRho, Max: logMaxRho, Src: src}
	raw := make([]float64, m)
	for i := range raw {
		raw[i] = draw.Rand()
	}

	if !(p.FilterCutoff > 0 && p.FilterCutoff < 1) {
		return raw
	}

	windowSize := int(float64(m) * p.FilterCutoff * 2.0)
	if windowSize < 3 {
		windowSize = 3
	}
	if windowSize > m {
		windowSize = m
	}
	sigma := float64(windowSize) / 3.0

	filtered := gaussianSmooth(raw, windowSize/2, sigma)
	smoothed := gaussianSmooth(filtered, windowSize/4, sigma)

	rescueRange(raw, smoothed, logMinRho, logMaxRho)
	return smoothed
}

// gaussianSmooth applies one pass of a Gaussian-weighted moving average
// with the given half-window and standard deviation.
func gaussianSmooth(x []float64, halfWindow int, sigma float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for i := range x {
		var sum, weightSum float64
		for j := -halfWindow; j <= halfWindow; j++ {
			idx := i + j
			if idx < 0 || idx >= n {
				continue
			}
			weight := math.Exp(-float64(j*j) / (2 * sigma * sigma))
			sum += x[idx] * weight
			weightSum += weight
		}
		if weightSum > 1e-10 {
			out[i] = sum / weightSum
		} else {
			out[i] = x[i]
		}
	}
	return out
}

// rescueRange rescales smoothed in place about raw's center if smoothing
// compressed its range below rescueRangeFraction of raw's range, then
// clamps every element to [logMinRho, logMaxRho].
func rescueRange(raw, smoothed []float64, logMinRho, logMaxRho float64) {
	smoothedMin, smoothedMax := minMax(smoothed)
	rawMin, rawMax := minMax(raw)

	if !(smoothedMax > smoothedMin+1e-6 && rawMax > rawMin+1e-6) {
		return
	}
	smoothedRange := smoothedMax - smoothedMin
	rawRange := rawMax - rawMin
	if smoothedRange >= rawRange*rescueRangeFraction {
		return
	}

	targetRange := rawRange * rescueTargetFraction
	smoothedCenter := (smoothedMin + smoothedMax) / 2
	rawCenter := (rawMin + rawMax) / 2
	scale := targetRange / smoothedRange

	for i, v := range smoothed {
		v = rawCenter + (v-smoothedCenter)*scale
		if v < logMinRho {
			v = logMinRho
		}
		if v > logMaxRho {
			v = logMaxRho
		}
		smoothed[i] = v
	}
}

func minMax(x []float64) (min, max float64) {
	min, max = x[0], x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// GenerateRandomModelAndForward draws a random model with
// GenerateRandomModel, builds its layer geometry and frequency grid, and
// evaluates its forward response in one call, mirroring the convenience
// entry point the source offers for self-test harnesses.
func GenerateRandomModelAndForward(p RandomModelParams, nFreq int, firstThickness, growth float64, src rand.Source) (mLogRho, h, depths, periods, omega []float64, response mt1d.Response, err error) {
	h, depths = mt1d.LayerThicknesses(p.M, firstThickness, growth)
	mLogRho = GenerateRandomModel(p, src)
	periods, omega, err = freq.GenerateDefault(nFreq)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	response = forward.Solve(mLogRho, h, omega)
	return mLogRho, h, depths, periods, omega, response, nil
}
