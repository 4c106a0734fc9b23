package internal

// ReconstructPath rebuilds the path ending at goal from the cameFrom map.
// The walk stops at the first node without a predecessor and start is
// prepended, so a goal equal to start yields []NodeType{start}.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	goal NodeType,
	start NodeType,
) []NodeType {
	path := make([]NodeType, 0, len(cameFrom)+1)
	current := goal
	for {
		previousNode, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, current)
		current = previousNode
	}
	path = append(path, start)

	Reverse(path)
	return path
}

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
