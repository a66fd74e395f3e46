// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_complete.go - Complete(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n. Undirected graphs get one
// symmetric pair per unordered {i,j}; directed graphs get every ordered
// pair i≠j.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, n, methodComplete)
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
				if err = link(g, cfg, base+i, base+j, methodComplete); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
