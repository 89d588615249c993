// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." and callers match with
// errors.Is. Context is attached by the caller with fmt.Errorf("ctx: %w").

package matrix

import "errors"

var (
	// ErrNonSquare signals that a row length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that A[i][j] != A[j][i] for some pair. Undirected
	// graphs need a symmetric matrix; "no edge" on one side and a weight on
	// the other is also asymmetric.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrDecode indicates that a matrix document could not be parsed.
	ErrDecode = errors.New("matrix: cannot decode document")
)
