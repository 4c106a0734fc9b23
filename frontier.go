package astar

import "github.com/google/btree"

// frontierEntry is one queued node. Entries order by FCost, then by node.
type frontierEntry[NodeType Node[NodeType]] struct {
	Node   NodeType
	GScore float64
	FCost  float64
}

func (e frontierEntry[NodeType]) less(other frontierEntry[NodeType]) bool {
	if e.FCost != other.FCost {
		return e.FCost < other.FCost
	}
	if e.Node != other.Node {
		return e.Node.Less(other.Node)
	}
	return e.GScore < other.GScore
}

// frontier is the open set. The same node may be queued more than once;
// outdated entries are dropped when popped.
type frontier[NodeType Node[NodeType]] struct {
	entries *btree.BTreeG[frontierEntry[NodeType]]
}

func newFrontier[NodeType Node[NodeType]]() *frontier[NodeType] {
	return &frontier[NodeType]{
		entries: btree.NewG[frontierEntry[NodeType]](16, func(a, b frontierEntry[NodeType]) bool {
			return a.less(b)
		}),
	}
}

func (f *frontier[NodeType]) Len() int { return f.entries.Len() }

func (f *frontier[NodeType]) push(entry frontierEntry[NodeType]) {
	f.entries.ReplaceOrInsert(entry)
}

// pop removes and returns the entry with the smallest priority.
func (f *frontier[NodeType]) pop() (frontierEntry[NodeType], bool) {
	return f.entries.DeleteMin()
}

// ascend visits queued entries in pop order until visit returns false.
func (f *frontier[NodeType]) ascend(visit func(frontierEntry[NodeType]) bool) {
	f.entries.Ascend(visit)
}
