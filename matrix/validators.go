// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for adjacency checks (shape, finiteness, symmetry).
//  - Validators return sentinels tagged with the validator name.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the strict lower triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures every row has exactly len(a) entries.
// Complexity: O(n).
func ValidateSquare(a Adjacency) error {
	n := len(a)
	for i, row := range a {
		if len(row) != n {
			return validatorErrorf("ValidateSquare",
				fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare))
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in the matrix.
// Assumes a is square. Complexity: O(n²).
func ValidateFinite(a Adjacency) error {
	for i, row := range a {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite",
					fmt.Errorf("A[%d][%d]=%g: %w", i, j, v, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateSymmetric checks A[i][j] == A[j][i] off the diagonal, treating
// every negative value as the same "no edge" sentinel.
// Assumes a is square. Complexity: O(n²).
func ValidateSymmetric(a Adjacency) error {
	for i := range a {
		for j := 0; j < i; j++ {
			aij, aji := a[i][j], a[j][i]
			if aij < 0 && aji < 0 {
				continue
			}
			if aij != aji {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("A[%d][%d]=%g, A[%d][%d]=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
			}
		}
	}

	return nil
}

// Validate runs ValidateSquare → ValidateFinite → ValidateSymmetric.
// The diagonal is never read as an edge and is therefore not checked beyond
// finiteness.
func Validate(a Adjacency) error {
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateFinite(a); err != nil {
		return err
	}

	return ValidateSymmetric(a)
}
