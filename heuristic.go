package astar

// Heuristic returns the estimated cost from node a to node b.
// It must never overestimate the true remaining cost for the search to stay optimal.
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Manhattan is |dx| + |dy|, an exact lower bound under 4-directional unit-cost movement.
func Manhattan(from, to Cell) float64 {
	return float64(abs(from.X-to.X) + abs(from.Y-to.Y))
}
