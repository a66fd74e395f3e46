// SPDX-License-Identifier: MIT
// Package: wgraph/matrix
//
// adjacency.go - dense adjacency and distance matrices from core.Graph.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/wgraph/core"
)

// Adjacency returns the V×V matrix whose (u, v) entry is the lightest weight
// among g's records u→v, or 0 if there is none. Self-loops are skipped.
// A graph with no vertices yields nil.
func Adjacency(g *core.Graph) (*mat.Dense, error) {
	return dense(g, 0)
}

// Distances returns the all-pairs shortest-path matrix of g: entry (u, v)
// is the cost of the cheapest u→v path, +Inf if v is unreachable from u.
// Negative weights are allowed as long as they form no negative cycle.
func Distances(g *core.Graph) (*mat.Dense, error) {
	d, err := dense(g, math.Inf(1))
	if err != nil || d == nil {
		return d, err
	}
	if err = FloydWarshall(d); err != nil {
		return nil, err
	}

	return d, nil
}

// dense builds the direct-edge matrix with absent as the off-diagonal filler.
func dense(g *core.Graph, absent float64) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, nil
	}

	data := make([]float64, n*n)
	seen := make([]bool, n*n)
	for i := range data {
		if i/n != i%n {
			data[i] = absent
		}
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		k := e.From*n + e.To
		if !seen[k] || e.Weight < data[k] {
			data[k] = e.Weight
			seen[k] = true
		}
	}

	return mat.NewDense(n, n, data), nil
}
