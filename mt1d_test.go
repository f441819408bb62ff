// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt1d

import (
	"errors"
	"math"
	"testing"
)

func TestLayeredModelValidate(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name string
		lm   LayeredModel
		want error
	}{
		{"ok", LayeredModel{H: []float64{1, 2, 3}, M: []float64{2, 2, 2}}, nil},
		{"len mismatch", LayeredModel{H: []float64{1, 2}, M: []float64{2, 2, 2}}, ErrInvalidConfiguration},
		{"too few layers", LayeredModel{H: []float64{1, 2}, M: []float64{2, 2}}, ErrInvalidConfiguration},
		{"nonpositive h", LayeredModel{H: []float64{1, -2, 3}, M: []float64{2, 2, 2}}, ErrInvalidConfiguration},
		{"nan m", LayeredModel{H: []float64{1, 2, 3}, M: []float64{2, math.NaN(), 2}}, ErrInvalidConfiguration},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := test.lm.Validate()
			if !errors.Is(got, test.want) && !(got == nil && test.want == nil) {
				t.Errorf("Validate() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestDepths(t *testing.T) {
	t.Parallel()
	depths := Depths([]float64{10, 20, 30})
	want := []float64{0, 10, 30}
	for i, d := range depths {
		if d != want[i] {
			t.Errorf("Depths()[%d] = %v, want %v", i, d, want[i])
		}
	}
}

func TestLayerThicknesses(t *testing.T) {
	t.Parallel()
	h, depths := LayerThicknesses(4, 10, 2)
	wantH := []float64{10, 20, 40, 80}
	wantDepths := []float64{0, 10, 30, 70}
	for i := range h {
		if h[i] != wantH[i] {
			t.Errorf("h[%d] = %v, want %v", i, h[i], wantH[i])
		}
		if depths[i] != wantDepths[i] {
			t.Errorf("depths[%d] = %v, want %v", i, depths[i], wantDepths[i])
		}
	}
}

func TestResponseLayout(t *testing.T) {
	t.Parallel()
	r := NewResponse(3)
	r.Set(0, 1.5, 45)
	r.Set(1, 1.7, 50)
	r.Set(2, 2.0, 60)
	if r.NFreq() != 3 {
		t.Fatalf("NFreq() = %d, want 3", r.NFreq())
	}
	if r.LogRhoA(1) != 1.7 || r.Phase(1) != 50 {
		t.Errorf("r[1] = (%v, %v), want (1.7, 50)", r.LogRhoA(1), r.Phase(1))
	}
	if r[2] != 1.7 || r[3] != 50 {
		t.Errorf("interleaving broken: r = %v", []float64(r))
	}
}
