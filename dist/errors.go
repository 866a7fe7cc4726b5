// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "errors"

var (
	// ErrNoData is returned when estimating parameters from an
	// empty sample.
	ErrNoData = errors.New("no observations to estimate from")

	// ErrUnequalP is returned when combining binomial
	// distributions whose success probabilities differ.
	ErrUnequalP = errors.New("p values are not equal")

	// ErrBadParams is returned by Validate for parameters outside
	// a family's domain.
	ErrBadParams = errors.New("invalid distribution parameters")
)
