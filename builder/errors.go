// SPDX-License-Identifier: MIT
// Package: kruskalview/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached at the call site with %w.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that the requested vertex count is below the
// minimum a constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnknownPreset indicates that no built-in graph has the requested name.
// Usage: if errors.Is(err, ErrUnknownPreset) { /* list PresetNames() */ }.
var ErrUnknownPreset = errors.New("builder: unknown preset")
