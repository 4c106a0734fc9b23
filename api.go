package astar

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pdrpinto/gridastar/internal/ctxlog"
)

// ErrExpansionLimit is returned when a search exceeds WithMaxExpansions.
var ErrExpansionLimit = errors.New("expansion limit reached")

// Node is a graph node type. Less breaks ties between frontier entries of
// equal priority, which keeps results deterministic.
type Node[NodeType any] interface {
	comparable
	Less(other NodeType) bool
}

// Graph is generic over node type N.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Result contains the outcome of a search. Found is false when the goal is
// unreachable; Path is then nil. A found path always starts at the start node
// and ends at the goal, so it is never empty.
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Logger        *slog.Logger
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for search diagnostics. Without it the
// logger carried by the context is used.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMaxExpansions caps the number of expanded nodes. Zero means no limit.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// ContextWithLogger returns a context whose logger is picked up by Search,
// Stepper and the gridfile loader.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return ctxlog.WithLogger(ctx, logger)
}

func loggerFromContext(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx)
}

// Search runs A* from startNode to goalNode and blocks until the goal is
// reached, the frontier is exhausted, or ctx is done.
//
// An unreachable goal is not an error: the returned Result has Found == false.
// The error is non-nil only when ctx is cancelled or the expansion limit is hit.
func Search[NodeType Node[NodeType]](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	state := newSearchState(contextObject, graph, startNode, goalNode, heuristic, options)
	state.logger.Debug("Search started.", "start", startNode, "goal", goalNode)

	for !state.done {
		if err := state.check(contextObject); err != nil {
			return Result[NodeType]{ExpandedNodes: state.expandedNodes}, err
		}
		state.advance()
	}
	return state.result(), nil
}

// FindPath searches grid from its start to its goal using the grid's heuristic.
// A blocked start cell has no path, even to itself.
func FindPath(contextObject context.Context, grid *Grid, options ...Option) (Result[Cell], error) {
	if grid.Blocked(grid.Start()) {
		return Result[Cell]{}, nil
	}
	return Search(contextObject, grid.Graph(), grid.Start(), grid.Goal(), grid.Heuristic(), options...)
}
