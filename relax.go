package astar

// relaxation is a candidate route to ToNode through FromNode.
type relaxation[NodeType comparable] struct {
	FromNode NodeType
	ToNode   NodeType
	GScore   float64
	FCost    float64
}

func propose[NodeType comparable](
	fromNode NodeType,
	currentGScore float64,
	neighbor Neighbor[NodeType],
	goalNode NodeType,
	heuristic Heuristic[NodeType],
) relaxation[NodeType] {
	tentativeG := currentGScore + neighbor.Cost
	return relaxation[NodeType]{
		FromNode: fromNode,
		ToNode:   neighbor.ID,
		GScore:   tentativeG,
		FCost:    tentativeG + heuristic(neighbor.ID, goalNode),
	}
}
