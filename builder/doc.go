// Package builder generates fixture graphs for tests, benchmarks and the
// wgraph gen command.
//
// A graph is assembled by BuildGraph from one or more Constructors. Each
// constructor appends its own vertices after those already present, so
// composing several yields their disjoint union:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//		builder.Grid(3, 4),
//		builder.RandomSparse(20, 0.1),
//	)
//
// Edges are undirected (two symmetric records) unless WithDirected is given.
// For a fixed seed, option list and constructor order the result is
// identical across runs.
package builder
