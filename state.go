package astar

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/pdrpinto/gridastar/internal"
)

// scoreMap holds per-node costs. Nodes never written read as +Inf.
type scoreMap[NodeType comparable] map[NodeType]float64

func (m scoreMap[NodeType]) get(node NodeType) float64 {
	if score, ok := m[node]; ok {
		return score
	}
	return math.Inf(1)
}

// searchState is the bookkeeping of a single search. Search and Stepper both drive it.
type searchState[NodeType Node[NodeType]] struct {
	graph     Graph[NodeType]
	start     NodeType
	goal      NodeType
	heuristic Heuristic[NodeType]
	options   Options
	logger    *slog.Logger

	openSet  *frontier[NodeType]
	gScore   scoreMap[NodeType]
	fScore   scoreMap[NodeType]
	cameFrom map[NodeType]NodeType
	closed   map[NodeType]bool

	expandedNodes int
	done          bool
	found         bool
	path          []NodeType
}

func newSearchState[NodeType Node[NodeType]](
	ctx context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options []Option,
) *searchState[NodeType] {
	var searchOptions Options
	for _, option := range options {
		option(&searchOptions)
	}

	logger := searchOptions.Logger
	if logger == nil {
		logger = loggerFromContext(ctx)
	}

	s := &searchState[NodeType]{
		graph:     graph,
		start:     startNode,
		goal:      goalNode,
		heuristic: heuristic,
		options:   searchOptions,
		logger:    logger,
		openSet:   newFrontier[NodeType](),
		gScore:    scoreMap[NodeType]{startNode: 0},
		fScore:    scoreMap[NodeType]{startNode: heuristic(startNode, goalNode)},
		cameFrom:  make(map[NodeType]NodeType),
		closed:    make(map[NodeType]bool),
	}
	s.openSet.push(frontierEntry[NodeType]{
		Node:   startNode,
		GScore: 0,
		FCost:  s.fScore.get(startNode),
	})
	return s
}

// check is run before every frontier pop.
func (s *searchState[NodeType]) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		s.logger.Debug("Search cancelled.", "expanded", s.expandedNodes, "error", err)
		return err
	}
	if limit := s.options.MaxExpansions; limit > 0 && s.expandedNodes >= limit {
		s.logger.Debug("Expansion limit reached.", "limit", limit)
		return fmt.Errorf("%w: %d", ErrExpansionLimit, limit)
	}
	return nil
}

// advance pops entries until it expands one node, and reports whether it did.
// Entries whose g-score has since been improved are discarded.
func (s *searchState[NodeType]) advance() (NodeType, bool) {
	for s.openSet.Len() > 0 {
		currentItem, _ := s.openSet.pop()
		current := currentItem.Node
		if currentItem.GScore > s.gScore.get(current) {
			continue
		}

		s.expandedNodes++
		s.closed[current] = true

		if current == s.goal {
			s.done = true
			s.found = true
			s.path = internal.ReconstructPath(s.cameFrom, s.goal, s.start)
			s.logger.Debug("Goal reached.",
				"cost", currentItem.GScore,
				"path_len", len(s.path),
				"expanded", s.expandedNodes,
			)
			return current, true
		}

		for _, neighbor := range s.graph.Neighbors(current) {
			s.relax(propose(current, currentItem.GScore, neighbor, s.goal, s.heuristic))
		}
		return current, true
	}

	s.done = true
	s.logger.Debug("Frontier exhausted without reaching goal.", "expanded", s.expandedNodes)
	var zero NodeType
	return zero, false
}

// relax applies the proposal if it strictly improves the target's g-score.
func (s *searchState[NodeType]) relax(proposal relaxation[NodeType]) bool {
	if proposal.GScore >= s.gScore.get(proposal.ToNode) {
		return false
	}
	s.cameFrom[proposal.ToNode] = proposal.FromNode
	s.gScore[proposal.ToNode] = proposal.GScore
	s.fScore[proposal.ToNode] = proposal.FCost
	s.openSet.push(frontierEntry[NodeType]{
		Node:   proposal.ToNode,
		GScore: proposal.GScore,
		FCost:  proposal.FCost,
	})
	return true
}

func (s *searchState[NodeType]) result() Result[NodeType] {
	if !s.found {
		return Result[NodeType]{ExpandedNodes: s.expandedNodes}
	}
	return Result[NodeType]{
		Path:          append([]NodeType(nil), s.path...),
		TotalCost:     s.gScore.get(s.goal),
		ExpandedNodes: s.expandedNodes,
		Found:         true,
	}
}

// openNodes lists nodes with a live frontier entry.
func (s *searchState[NodeType]) openNodes() map[NodeType]bool {
	open := make(map[NodeType]bool)
	s.openSet.ascend(func(entry frontierEntry[NodeType]) bool {
		if entry.GScore <= s.gScore.get(entry.Node) {
			open[entry.Node] = true
		}
		return true
	})
	return open
}
