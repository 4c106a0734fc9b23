package astar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGridStepper(t *testing.T, grid *Grid) *Stepper[Cell] {
	t.Helper()
	stepper := NewStepper(context.Background(), grid.Graph(), grid.Start(), grid.Goal(), grid.Heuristic())
	t.Cleanup(stepper.Close)
	return stepper
}

func TestStepper_FirstStep(t *testing.T) {
	grid := mustGrid(t, 3, 3, Cell{X: 0, Y: 0}, Cell{X: 2, Y: 2})
	stepper := newGridStepper(t, grid)

	snapshot, err := stepper.Step()
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.StepIndex)
	assert.Equal(t, Cell{X: 0, Y: 0}, snapshot.Current)
	assert.False(t, snapshot.Done)
	assert.Equal(t, map[Cell]bool{{X: 0, Y: 0}: true}, snapshot.Closed)
	assert.Equal(t, map[Cell]bool{{X: 1, Y: 0}: true, {X: 0, Y: 1}: true}, snapshot.Open)
	assert.Equal(t, map[Cell]Cell{{X: 1, Y: 0}: {X: 0, Y: 0}, {X: 0, Y: 1}: {X: 0, Y: 0}}, snapshot.CameFrom)
	assert.Nil(t, snapshot.Path)
}

func TestStepper_RunsToSamePathAsSearch(t *testing.T) {
	grid := mustGrid(t, 10, 10, Cell{X: 1, Y: 1}, Cell{X: 8, Y: 8},
		Cell{X: 3, Y: 3}, Cell{X: 5, Y: 5}, Cell{X: 7, Y: 7}, Cell{X: 2, Y: 5}, Cell{X: 4, Y: 7})
	want, err := FindPath(context.Background(), grid)
	require.NoError(t, err)

	stepper := newGridStepper(t, grid)
	var snapshot StepSnapshot[Cell]
	for i := 1; !snapshot.Done; i++ {
		require.LessOrEqual(t, i, grid.Width()*grid.Height(), "stepper did not finish")
		snapshot, err = stepper.Step()
		require.NoError(t, err)
		assert.Equal(t, i, snapshot.StepIndex)
	}

	assert.True(t, snapshot.Found)
	assert.Equal(t, grid.Goal(), snapshot.Current)
	assert.Equal(t, want.Path, snapshot.Path)
	assert.Equal(t, want, stepper.Result())

	again, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, snapshot, again)
}

func TestStepper_Exhausted(t *testing.T) {
	grid := mustGrid(t, 3, 3, Cell{X: 0, Y: 0}, Cell{X: 2, Y: 2},
		Cell{X: 1, Y: 0}, Cell{X: 0, Y: 1}, Cell{X: 1, Y: 2}, Cell{X: 2, Y: 1}, Cell{X: 1, Y: 1})
	stepper := newGridStepper(t, grid)

	first, err := stepper.Step()
	require.NoError(t, err)
	assert.False(t, first.Done)
	assert.Empty(t, first.Open)

	last, err := stepper.Step()
	require.NoError(t, err)
	assert.True(t, last.Done)
	assert.False(t, last.Found)
	assert.Nil(t, last.Path)
	assert.Equal(t, 1, last.StepIndex)
	assert.False(t, stepper.Result().Found)
}

func TestStepper_Close(t *testing.T) {
	grid := mustGrid(t, 5, 5, Cell{}, Cell{X: 4, Y: 4})
	stepper := newGridStepper(t, grid)

	_, err := stepper.Step()
	require.NoError(t, err)

	stepper.Close()
	_, err = stepper.Step()
	require.ErrorIs(t, err, context.Canceled)
}

func TestStepper_ExpansionLimit(t *testing.T) {
	grid := mustGrid(t, 5, 5, Cell{}, Cell{X: 4, Y: 4})
	stepper := NewStepper(context.Background(), grid.Graph(), grid.Start(), grid.Goal(), grid.Heuristic(), WithMaxExpansions(1))
	defer stepper.Close()

	_, err := stepper.Step()
	require.NoError(t, err)
	_, err = stepper.Step()
	require.ErrorIs(t, err, ErrExpansionLimit)
}
