// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor for an Erdős–Rényi G(n, p) sample:
// every admissible pair is included independently with probability p.
// Undirected graphs try unordered pairs i<j, directed graphs ordered pairs
// i≠j, always in ascending (i, j) order.
//
// An RNG is required for 0 < p < 1; p ∈ {0, 1} is deterministic.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		base, err := addVertices(g, n, methodRandomSparse)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			j := i + 1
			if cfg.directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				include := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err = link(g, cfg, base+i, base+j, methodRandomSparse); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
