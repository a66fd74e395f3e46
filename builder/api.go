// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// api.go - BuildGraph orchestrator and shared vertex/edge helpers.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// It must append vertices rather than reuse existing ones, validate its
// parameters first, and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph with gopts, resolves bopts and
// applies cons in order. Constructor errors are wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(0, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n vertices and returns the id of the first.
func addVertices(g *core.Graph, n int, method string) (int, error) {
	base := g.VertexCount()
	for i := 0; i < n; i++ {
		if _, err := g.AddVertex(); err != nil {
			return 0, fmt.Errorf("%s: AddVertex: %w", method, err)
		}
	}

	return base, nil
}

// link adds u-v with a generated weight, as one record when directed and as
// a symmetric pair otherwise.
func link(g *core.Graph, cfg builderConfig, u, v int, method string) error {
	w := cfg.weightFn(cfg.rng)
	var ok bool
	if cfg.directed {
		ok = g.AddEdge(u, v, w)
	} else {
		ok = g.AddUndirectedEdge(u, v, w)
	}
	if !ok {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, ErrConstructFailed)
	}

	return nil
}
