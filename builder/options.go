// SPDX-License-Identifier: MIT
// Package: kruskalview/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a constructor by mutating a builderConfig before the
// matrix is generated.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightRange sets the inclusive integer weight range [lo, hi].
// Panics when lo < 0 (negative entries mean "no link") or lo > hi.
func WithWeightRange(lo, hi int) Option {
	if lo < 0 || lo > hi {
		panic("builder: WithWeightRange requires 0 <= lo <= hi")
	}
	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = lo, hi
	}
}

// WithExtraEdges sets the inclusive range for the number of links added on
// top of the spanning tree. The drawn count is capped by the free pairs.
// Panics when lo < 0 or lo > hi.
func WithExtraEdges(lo, hi int) Option {
	if lo < 0 || lo > hi {
		panic("builder: WithExtraEdges requires 0 <= lo <= hi")
	}
	return func(c *builderConfig) {
		c.minExtra, c.maxExtra = lo, hi
	}
}
