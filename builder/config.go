// SPDX-License-Identifier: MIT
// Package: kruskalview/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng       = seeded from the wall clock (use WithSeed for fixtures)
//   • weights   = 1..10 inclusive
//   • extra     = 1..10 links beyond the spanning tree

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng *rand.Rand

	minWeight, maxWeight int
	minExtra, maxExtra   int
}

const (
	defaultMinWeight = 1
	defaultMaxWeight = 10
	defaultMinExtra  = 1
	defaultMaxExtra  = 10
)

// newBuilderConfig applies opts over the defaults; last option wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		minWeight: defaultMinWeight,
		maxWeight: defaultMaxWeight,
		minExtra:  defaultMinExtra,
		maxExtra:  defaultMaxExtra,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// between draws an integer uniformly from [lo, hi].
func (c builderConfig) between(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}
