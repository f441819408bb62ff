// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

import "fmt"

// Status reports how an Invert call terminated: Converged,
// MaxIterReached, SolverFailed, Cancelled, or InvalidConfig.
type Status int

const (
	// Converged means ||δm||₂ dropped below Params.TolDm.
	Converged Status = iota
	// MaxIterReached means Params.MaxIter completed without converging.
	MaxIterReached
	// SolverFailed means the damped normal equations were not
	// factorisable by either gn.Solver path.
	SolverFailed
	// Cancelled means the caller's context was done between iterations.
	Cancelled
	// InvalidConfig means Params failed validation before any
	// iteration ran.
	InvalidConfig
)

var statusNames = map[Status]string{
	Converged:       "Converged",
	MaxIterReached:  "MaxIterReached",
	SolverFailed:    "SolverFailed",
	Cancelled:       "Cancelled",
	InvalidConfig:   "InvalidConfig",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}
