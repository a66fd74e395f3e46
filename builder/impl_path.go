// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_path.go - Path(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the n-vertex path P_n: edges i→i+1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base, err := addVertices(g, n, methodPath)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, base+i, base+i+1, methodPath); err != nil {
				return err
			}
		}

		return nil
	}
}
