// SPDX-License-Identifier: MIT
// Package: matrix
//
// adjacency.go - dense weighted adjacency input and its conversion to and
// from core.Graph.
//
// Contract:
//   - A[i][j] >= 0 is the weight of the undirected link i–j.
//   - A[i][j] < 0 means "no link" (NoEdge is the canonical sentinel).
//   - Only the strict lower triangle (j < i) is read when building a graph,
//     so every unordered pair yields at most one link.
//
// Determinism:
//   - Link ids follow row-major scan order of the lower triangle.
//   - Link i–j is created with Source = i (row), Target = j (column).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/kruskalview/core"
)

// NoEdge is the canonical "absent link" value. Any negative entry is
// treated the same way.
const NoEdge = -1.0

// Adjacency is a dense n×n weighted adjacency matrix.
type Adjacency [][]float64

// New returns an n×n matrix filled with NoEdge.
// Complexity: O(n²).
func New(n int) Adjacency {
	a := make(Adjacency, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = NoEdge
		}
	}

	return a
}

// Size returns the number of rows.
func (a Adjacency) Size() int { return len(a) }

// Set writes weight w on both (i, j) and (j, i).
func (a Adjacency) Set(i, j int, w float64) {
	a[i][j] = w
	a[j][i] = w
}

// Has reports whether i and j are linked.
func (a Adjacency) Has(i, j int) bool { return a[i][j] >= 0 }

// Edges returns the number of links the matrix describes.
// Complexity: O(n²).
func (a Adjacency) Edges() int {
	count := 0
	for i := range a {
		for j := 0; j < i && j < len(a[i]); j++ {
			if a[i][j] >= 0 {
				count++
			}
		}
	}

	return count
}

// ToGraph validates a and builds a graph with nodes 0..n-1 (colour group
// equal to id, coordinates zero) and one link per non-negative entry of
// the strict lower triangle.
// Complexity: O(n²).
func ToGraph(a Adjacency) (*core.Graph, error) {
	if err := Validate(a); err != nil {
		return nil, fmt.Errorf("ToGraph: %w", err)
	}

	g := core.NewGraph()
	for range a {
		g.AddNode(0, 0)
	}
	for i, row := range a {
		for j := 0; j < i; j++ {
			if row[j] < 0 {
				continue
			}
			if _, err := g.AddLink(i, j, row[j]); err != nil {
				return nil, fmt.Errorf("ToGraph: A[%d][%d]: %w", i, j, err)
			}
		}
	}

	return g, nil
}

// FromGraph renders g as an adjacency matrix. Absent pairs hold NoEdge.
// Complexity: O(V² + E).
func FromGraph(g *core.Graph) (Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	a := New(g.NodeCount())
	for _, l := range g.Links {
		if l.Source < 0 || l.Source >= len(a) || l.Target < 0 || l.Target >= len(a) {
			return nil, fmt.Errorf("FromGraph: link %d: %w", l.ID, core.ErrNodeNotFound)
		}
		a.Set(l.Source, l.Target, l.Weight)
	}

	return a, nil
}
