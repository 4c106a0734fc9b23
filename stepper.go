package astar

import (
	"context"
	"maps"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper runs the same search as Search one expansion at a time.
type Stepper[NodeType Node[NodeType]] struct {
	ctx    context.Context
	cancel context.CancelFunc
	state  *searchState[NodeType]

	stepCount int
}

// NewStepper prepares a search without expanding anything yet.
func NewStepper[NodeType Node[NodeType]](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) *Stepper[NodeType] {
	ctx, cancel := context.WithCancel(parent)
	return &Stepper[NodeType]{
		ctx:    ctx,
		cancel: cancel,
		state:  newSearchState(ctx, graph, startNode, goalNode, heuristic, options),
	}
}

// Close releases the stepper. Later calls to Step return context.Canceled.
func (s *Stepper[NodeType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every further Step returns the final snapshot.
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if s.state.done {
		return s.snapshot(s.finalNode()), nil
	}
	if err := s.state.check(s.ctx); err != nil {
		return StepSnapshot[NodeType]{StepIndex: s.stepCount}, err
	}

	current, expanded := s.state.advance()
	if !expanded {
		return s.snapshot(current), nil
	}
	s.stepCount++
	return s.snapshot(current), nil
}

// Result returns the outcome so far. It is only meaningful once a snapshot reports Done.
func (s *Stepper[NodeType]) Result() Result[NodeType] {
	return s.state.result()
}

func (s *Stepper[NodeType]) finalNode() NodeType {
	if s.state.found {
		return s.state.goal
	}
	var zero NodeType
	return zero
}

func (s *Stepper[NodeType]) snapshot(current NodeType) StepSnapshot[NodeType] {
	snapshot := StepSnapshot[NodeType]{
		Current:   current,
		Open:      s.state.openNodes(),
		Closed:    maps.Clone(s.state.closed),
		CameFrom:  maps.Clone(s.state.cameFrom),
		Done:      s.state.done,
		Found:     s.state.found,
		StepIndex: s.stepCount,
	}
	if s.state.found {
		snapshot.Path = append([]NodeType(nil), s.state.path...)
	}
	return snapshot
}
