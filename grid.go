package astar

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidInput is returned when a grid definition is malformed.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which part of a grid definition was rejected.
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// offsets lists the movement directions in expansion order: east, west, south, north.
var offsets = [4]Cell{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// Grid is a bounded 2D space with a fixed set of blocked cells.
// It is never mutated after NewGrid returns, so concurrent searches may share it.
type Grid struct {
	width     int
	height    int
	start     Cell
	goal      Cell
	obstacles map[Cell]struct{}
}

// NewGrid validates the definition and builds a grid. Start, goal and every
// obstacle must lie inside [0,width) x [0,height). Start and goal may be
// obstacles; such a grid simply has no path unless start == goal.
func NewGrid(width, height int, start, goal Cell, obstacles []Cell) (*Grid, error) {
	if width <= 0 {
		return nil, &InputError{Field: "width", Value: width, Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &InputError{Field: "height", Value: height, Reason: "must be positive"}
	}

	grid := &Grid{
		width:     width,
		height:    height,
		start:     start,
		goal:      goal,
		obstacles: make(map[Cell]struct{}, len(obstacles)),
	}
	if !grid.InBounds(start) {
		return nil, &InputError{Field: "start", Value: start, Reason: "out of bounds"}
	}
	if !grid.InBounds(goal) {
		return nil, &InputError{Field: "goal", Value: goal, Reason: "out of bounds"}
	}
	for _, obstacle := range obstacles {
		if !grid.InBounds(obstacle) {
			return nil, &InputError{Field: "obstacle", Value: obstacle, Reason: "out of bounds"}
		}
		grid.obstacles[obstacle] = struct{}{}
	}
	return grid, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Start() Cell { return g.start }
func (g *Grid) Goal() Cell  { return g.goal }

// InBounds reports whether c lies inside the grid, ignoring obstacles.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Blocked reports whether c is an obstacle.
func (g *Grid) Blocked(c Cell) bool {
	_, blocked := g.obstacles[c]
	return blocked
}

// IsValid reports whether c is inside the grid and not an obstacle.
func (g *Grid) IsValid(c Cell) bool {
	return g.InBounds(c) && !g.Blocked(c)
}

// Obstacles returns the blocked cells in (X, Y) order.
func (g *Grid) Obstacles() []Cell {
	cells := make([]Cell, 0, len(g.obstacles))
	for c := range g.obstacles {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

// Neighbors returns the traversable neighbors of c in east, west, south, north order.
func (g *Grid) Neighbors(c Cell) []Cell {
	result := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		if n := c.Add(d); g.IsValid(n) {
			result = append(result, n)
		}
	}
	return result
}

// Graph adapts the grid to Graph. Every move costs 1.
func (g *Grid) Graph() Graph[Cell] {
	return gridGraph{grid: g}
}

type gridGraph struct{ grid *Grid }

func (gg gridGraph) Neighbors(c Cell) []Neighbor[Cell] {
	cells := gg.grid.Neighbors(c)
	out := make([]Neighbor[Cell], len(cells))
	for i, n := range cells {
		out[i] = Neighbor[Cell]{ID: n, Cost: 1}
	}
	return out
}

// Heuristic returns the admissible heuristic for the grid's 4-directional movement.
func (g *Grid) Heuristic() Heuristic[Cell] {
	return Manhattan
}
