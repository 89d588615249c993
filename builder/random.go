// SPDX-License-Identifier: MIT
// Package: kruskalview/builder
//
// random.go - RandomMatrix, a seeded random connected weighted graph.
//
// Algorithm:
//  1. Enumerate all unordered pairs (i<j) and shuffle them (Fisher–Yates).
//  2. Walk the shuffled pairs; a pair joining two DSU components becomes a
//     tree link. This yields a uniformly shuffled spanning tree.
//  3. Pairs skipped in step 2 are free; the first k of them (in shuffled
//     order) become extra links, k drawn from the extra-edge range and
//     capped by the number of free pairs.
//
// Complexity: O(n²) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kruskalview/dsu"
	"github.com/katalvlaran/kruskalview/matrix"
)

// minRandomVertices is the smallest n RandomMatrix accepts.
const minRandomVertices = 1

type pair struct{ u, v int }

// RandomMatrix returns a connected n-vertex adjacency matrix with integer
// weights. Returns ErrTooFewVertices for n < 1.
func RandomMatrix(n int, opts ...Option) (matrix.Adjacency, error) {
	if n < minRandomVertices {
		return nil, fmt.Errorf("RandomMatrix: n=%d < %d: %w", n, minRandomVertices, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	cfg.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	sets, err := dsu.New(n)
	if err != nil {
		return nil, fmt.Errorf("RandomMatrix: %w", err)
	}
	a := matrix.New(n)
	free := pairs[:0]
	for _, p := range pairs {
		same, err := sets.Same(p.u, p.v)
		if err != nil {
			return nil, fmt.Errorf("RandomMatrix: %w", err)
		}
		if same {
			free = append(free, p)
			continue
		}
		if err = sets.Union(p.u, p.v); err != nil {
			return nil, fmt.Errorf("RandomMatrix: %w", err)
		}
		a.Set(p.u, p.v, float64(cfg.between(cfg.minWeight, cfg.maxWeight)))
	}

	extra := cfg.between(cfg.minExtra, cfg.maxExtra)
	if extra > len(free) {
		extra = len(free)
	}
	for _, p := range free[:extra] {
		a.Set(p.u, p.v, float64(cfg.between(cfg.minWeight, cfg.maxWeight)))
	}

	return a, nil
}
