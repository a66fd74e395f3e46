// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_star.go - Star(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a hub (the first new vertex) joined to
// n-1 leaves. Directed stars point outward.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, err := addVertices(g, n, methodStar)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, cfg, hub, hub+i, methodStar); err != nil {
				return err
			}
		}

		return nil
	}
}
