// Package converters provides two-way adapters between core.Graph and
// gonum/graph weighted graphs.
//
// gonum's simple graphs hold at most one edge per ordered pair and reject
// self-loops, so exporting is lossy:
//   - parallel records collapse to the lightest one,
//   - self-loops are dropped.
//
// Importing assigns dense ids 0..n-1 to gonum nodes in ascending ID order and
// returns that mapping.
package converters
