// Package dijkstra defines result types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– WithMaxDistance: stop once the closest unsettled vertex is farther than the cap.
//
// Errors (sentinel):
//
//	– ErrNegativeWeight  if a negative edge weight is present in the graph.
//	– ErrOptionViolation if an option carries an invalid value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	// Dijkstra's result is only defined for non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – vertices whose distance exceeds it are not settled.
// Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance sets a maximum distance threshold.
// The run stops as soon as the smallest unsettled distance exceeds max;
// those vertices keep Dist = +Inf and Parent = core.None.
// Negative values cause ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result holds shortest-path distances and the shortest-path tree.
//
// Dist[v] is the distance from Source, +Inf if v was not reached.
// Parent[v] is v's predecessor, core.None for Source and unreached vertices.
// Both slices are nil when the source was invalid.
type Result struct {
	Source int
	Dist   []float64
	Parent []int
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// PathTo returns the vertices on the shortest path Source → dest,
// or nil if dest is unreachable.
func (r *Result) PathTo(dest int) []int {
	if !r.Reachable(dest) {
		return nil
	}
	var path []int
	for cur := dest; cur != core.None; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
