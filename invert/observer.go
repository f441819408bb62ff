// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

// Observer receives progress notifications from Invert, once per
// completed Gauss-Newton iteration. It decouples the coordinator from
// any particular host concurrency model: implement it and pass it in
// Params to drive a progress bar, a log line, or a channel send.
//
// OnIteration must not mutate state the coordinator reads, and must not
// call back into Invert; Invert makes no concurrency guarantee beyond
// calling OnIteration synchronously, in iteration order, from the same
// goroutine that called Invert.
type Observer interface {
	OnIteration(iteration int, residualNorm, dmNorm float64)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(iteration int, residualNorm, dmNorm float64)

// OnIteration calls f.
func (f ObserverFunc) OnIteration(iteration int, residualNorm, dmNorm float64) {
	f(iteration, residualNorm, dmNorm)
}
