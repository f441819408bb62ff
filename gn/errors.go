// Copyright ©2024 The mt1d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gn

import "errors"

var (
	errInvalidLambda = errors.New("gn: lambda must be finite and non-negative")
	errSingular      = errors.New("gn: normal-equation matrix is not factorisable")
)
