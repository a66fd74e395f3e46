// Package matrix exports core.Graph to dense gonum matrices and runs the
// all-pairs shortest-path closure on them.
//
//   - Adjacency: lightest direct weight per ordered pair, 0 where absent.
//   - Distances: the same with +Inf where absent and 0 on the diagonal,
//     closed under Floyd–Warshall.
//
// Matrices cost O(V²) memory and suit small or dense graphs. Self-loops and
// all but the lightest of parallel records are not represented.
package matrix
