// Package builder produces adjacency matrices for the MST visualizer:
// seeded random connected graphs and the built-in preset graphs.
//
// Both return a matrix.Adjacency, so every source of graphs goes through
// the same validation and conversion (matrix.ToGraph) before reaching the
// MST engine.
//
//   - RandomMatrix: shuffles all unordered pairs, keeps the ones that join
//     two components (a random spanning tree, via package dsu), then adds a
//     random number of extra links drawn from the remaining pairs.
//   - Preset / PresetNames: the "hexagon" (6 nodes) and "decagon" (10 nodes)
//     sample graphs.
//
// Configuration is functional (Option). Option constructors panic on
// meaningless input; constructors return sentinel errors instead.
//
// Determinism: RandomMatrix with WithSeed(s) always returns the same matrix
// for the same n and options.
package builder
