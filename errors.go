// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt1d

import "errors"

// Sentinel errors returned by the engine. Callers should compare with
// errors.Is, not string equality.
var (
	// ErrInvalidConfiguration reports inconsistent input sizes, a
	// non-positive frequency range, M < 3, or another input-validation
	// failure detected before the first iteration runs.
	ErrInvalidConfiguration = errors.New("mt1d: invalid configuration")

	// ErrSolverFailure reports that the damped normal equations were
	// not factorisable (Cholesky rejected and the LU fallback also
	// failed).
	ErrSolverFailure = errors.New("mt1d: normal-equation solver failed")

	// ErrCancelled reports a cooperative stop requested between
	// Gauss-Newton iterations.
	ErrCancelled = errors.New("mt1d: inversion cancelled")
)
