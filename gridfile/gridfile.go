// Package gridfile loads grid definitions from HCL files.
//
// A file holds exactly one grid block:
//
//	grid {
//	  width     = 10
//	  height    = 10
//	  start     = [1, 1]
//	  goal      = [8, 8]
//	  obstacles = [[3, 3], [5, 5]]
//	}
//
// The obstacles attribute is optional.
package gridfile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/ctxlog"
)

// ErrMalformed is returned for files that parse but do not describe a grid.
var ErrMalformed = errors.New("malformed grid file")

type fileRoot struct {
	Grids []*gridBlock `hcl:"grid,block"`
}

type gridBlock struct {
	Width     int     `hcl:"width"`
	Height    int     `hcl:"height"`
	Start     []int   `hcl:"start"`
	Goal      []int   `hcl:"goal"`
	Obstacles [][]int `hcl:"obstacles,optional"`
}

// Load reads and parses the grid file at path.
func Load(ctx context.Context, path string) (*astar.Grid, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file %s: %w", path, err)
	}
	return Parse(ctx, path, src)
}

// Parse decodes src as a grid file. filename is only used in error messages.
// Grid validation failures wrap astar.ErrInvalidInput.
func Parse(ctx context.Context, filename string, src []byte) (*astar.Grid, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing grid file.", "file", filename, "bytes", len(src))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagnosticsError("parse", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, diagnosticsError("decode", filename, diags)
	}
	if len(root.Grids) != 1 {
		return nil, fmt.Errorf("%w %s: expected exactly one grid block, found %d", ErrMalformed, filename, len(root.Grids))
	}
	block := root.Grids[0]

	start, err := toCell("start", block.Start)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformed, filename, err)
	}
	goal, err := toCell("goal", block.Goal)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformed, filename, err)
	}
	obstacles := make([]astar.Cell, 0, len(block.Obstacles))
	for i, pair := range block.Obstacles {
		cell, err := toCell(fmt.Sprintf("obstacles[%d]", i), pair)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrMalformed, filename, err)
		}
		obstacles = append(obstacles, cell)
	}

	grid, err := astar.NewGrid(block.Width, block.Height, start, goal, obstacles)
	if err != nil {
		return nil, fmt.Errorf("grid file %s: %w", filename, err)
	}
	logger.Debug("Grid file loaded.",
		"file", filename,
		"width", grid.Width(),
		"height", grid.Height(),
		"obstacles", len(obstacles),
	)
	return grid, nil
}

func toCell(name string, pair []int) (astar.Cell, error) {
	if len(pair) != 2 {
		return astar.Cell{}, fmt.Errorf("%s must be [x, y], got %d values", name, len(pair))
	}
	return astar.Cell{X: pair[0], Y: pair[1]}, nil
}

func diagnosticsError(stage, filename string, diags hcl.Diagnostics) error {
	return fmt.Errorf("failed to %s grid file %s: %w", stage, filename, diags)
}
