// Package astar finds shortest paths on 2D grids with A*.
//
// A Grid is a bounded space of cells with a fixed set of obstacles and
// 4-directional movement at unit cost. FindPath searches it from its start
// cell to its goal cell with the Manhattan heuristic.
//
// The search itself is generic over node type and exposes two entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Frontier entries are ordered by estimated total cost and then by node, so
// identical inputs always produce the identical path. An unreachable goal is
// reported through Result.Found rather than an error.
package astar
