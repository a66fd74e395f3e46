// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_cycle.go - Cycle(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n: edges i→(i+1)%n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, n, methodCycle)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, cfg, base+i, base+(i+1)%n, methodCycle); err != nil {
				return err
			}
		}

		return nil
	}
}
