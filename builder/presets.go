// SPDX-License-Identifier: MIT
// Package: kruskalview/builder
//
// presets.go - the built-in sample graphs.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/kruskalview/matrix"
)

const (
	// PresetHexagon is a dense 6-node graph with many equal weights.
	PresetHexagon = "hexagon"
	// PresetDecagon is a sparse 10-node graph.
	PresetDecagon = "decagon"
)

var presets = map[string]matrix.Adjacency{
	PresetHexagon: {
		{-1, 5, 5, 2, 5, 4},
		{5, -1, 10, 7, 7, 10},
		{5, 10, -1, 6, 5, 1},
		{2, 7, 6, -1, 1, 1},
		{5, 7, 5, 1, -1, 10},
		{4, 10, 1, 1, 10, -1},
	},
	PresetDecagon: {
		{-1, 3, -1, -1, 10, -1, 10, -1, -1, 3},
		{3, -1, -1, -1, 6, -1, -1, 7, 3, -1},
		{-1, -1, -1, -1, 2, -1, -1, -1, -1, -1},
		{-1, -1, -1, -1, 6, -1, 10, 3, -1, 9},
		{10, 6, 2, 6, -1, -1, -1, -1, -1, 10},
		{-1, -1, -1, -1, -1, -1, 8, 5, 1, -1},
		{10, -1, -1, 10, -1, 8, -1, 2, 2, -1},
		{-1, 7, -1, 3, -1, 5, 2, -1, -1, -1},
		{-1, 3, -1, -1, -1, 1, 2, -1, -1, -1},
		{3, -1, -1, 9, 10, -1, -1, -1, -1, -1},
	},
}

// PresetNames returns the built-in graph names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Preset returns a fresh copy of the named graph. Names are matched
// case-insensitively.
func Preset(name string) (matrix.Adjacency, error) {
	src, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("Preset(%q): %w", name, ErrUnknownPreset)
	}
	out := make(matrix.Adjacency, len(src))
	for i, row := range src {
		out[i] = append([]float64(nil), row...)
	}

	return out, nil
}
