// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_grid.go - Grid(rows, cols) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols 4-neighbourhood lattice.
// Cell (r,c) is vertex base+r*cols+c. Each cell links to its right and
// bottom neighbour, in that order.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base, err := addVertices(g, rows*cols, methodGrid)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					if err = link(g, cfg, u, u+1, methodGrid); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, cfg, u, u+cols, methodGrid); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
