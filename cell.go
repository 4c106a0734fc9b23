package astar

import "strconv"

// Cell is a grid coordinate. It is a value type and can be used as a map key.
type Cell struct {
	X int
	Y int
}

// Less orders cells lexicographically on (X, Y).
func (c Cell) Less(other Cell) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Adjacent reports whether other is one of the four cardinal neighbors of c.
func (c Cell) Adjacent(other Cell) bool {
	dx, dy := abs(c.X-other.X), abs(c.Y-other.Y)
	return dx+dy == 1
}

func (c Cell) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
