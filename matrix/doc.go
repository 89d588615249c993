// SPDX-License-Identifier: MIT

// Package matrix is the graph construction interface of kruskalview: a dense
// weighted adjacency matrix where a negative entry means "no link".
//
// Collaborators (presets, random generators, YAML files) produce an
// Adjacency; ToGraph turns it into the core.Graph the MST engine consumes.
//
//	a := matrix.Adjacency{
//		{-1, 1, 3},
//		{1, -1, 2},
//		{3, 2, -1},
//	}
//	g, err := matrix.ToGraph(a) // links 1-0 (w=1), 2-0 (w=3), 2-1 (w=2)
//
// Rules:
//   - The matrix must be square, finite and symmetric (undirected graph).
//   - Only the strict lower triangle is read, so each pair yields one link.
//   - The diagonal is ignored: self-loops never exist.
//   - Link ids follow the row-major scan of the lower triangle, which is
//     also the tie-break order for equal weights in the MST engine.
//
// Errors: ErrNonSquare, ErrAsymmetry, ErrNaNInf, ErrGraphNil, ErrDecode.
package matrix
