// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// errors.go - sentinel errors for the builder package.

package builder

import "errors"

// Sentinel errors. Constructors wrap them with method context via %w.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a rejected core mutation.
	ErrConstructFailed = errors.New("builder: construction failed")
)
