// SPDX-License-Identifier: MIT
// Package: wgraph/matrix
//
// errors.go - sentinel errors for the matrix package.

package matrix

import "errors"

var (
	// ErrNilGraph is returned when a nil graph is passed to an exporter.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrDimensionMismatch indicates a non-square matrix where a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativeCycle indicates a negative diagonal after the closure.
	ErrNegativeCycle = errors.New("matrix: negative cycle")
)
