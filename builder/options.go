// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// options.go - builderConfig and functional options.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
	directed bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption customizes constructor behavior.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG so stochastic builders are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithDirected emits one record per edge instead of a symmetric pair.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}
