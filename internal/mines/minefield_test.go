package mines

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/internal/grid"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func stateAt(t *testing.T, m *Minefield, p grid.Point) CellState {
	t.Helper()
	view, ok := m.CellAt(p)
	require.True(t, ok, "expected %+v to be in bounds", p)
	return view.State
}

func TestOpenReportsKindOnFreshTransition(t *testing.T) {
	m := NewMinefieldWithMines(grid.Size{Width: 3, Height: 3}, grid.Point{X: 2, Y: 2})

	kind, opened := m.Open(grid.Point{X: 0, Y: 2})
	assert.True(t, opened)
	assert.Equal(t, Water, kind)

	// re-opening an opened cell is a silent no-op
	_, opened = m.Open(grid.Point{X: 0, Y: 2})
	assert.False(t, opened)

	kind, opened = m.Open(grid.Point{X: 2, Y: 2})
	assert.True(t, opened)
	assert.Equal(t, Mine, kind)
}

func TestOpenOutOfBounds(t *testing.T) {
	m := NewMinefield(grid.Size{Width: 2, Height: 2})

	for _, p := range []grid.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 2}} {
		_, opened := m.Open(p)
		assert.False(t, opened, "expected open at %+v to be a no-op", p)
	}
}

func TestCannotOpenFlagged(t *testing.T) {
	m := NewMinefield(grid.Size{Width: 5, Height: 5})
	p := grid.Point{}

	m.Flag(p)
	_, opened := m.Open(p)

	assert.False(t, opened)
	assert.Equal(t, Flagged, stateAt(t, m, p))
}

func TestFlagToggles(t *testing.T) {
	m := NewMinefield(grid.Size{Width: 2, Height: 2})
	p := grid.Point{X: 1, Y: 0}

	m.Flag(p)
	assert.Equal(t, Flagged, stateAt(t, m, p))

	m.Flag(p)
	assert.Equal(t, Closed, stateAt(t, m, p))
}

func TestFlagOpenedIsNoop(t *testing.T) {
	m := NewMinefieldWithMines(grid.Size{Width: 2, Height: 1}, grid.Point{X: 1, Y: 0})
	p := grid.Point{}

	_, opened := m.Open(p)
	require.True(t, opened)

	m.Flag(p)
	assert.Equal(t, Opened, stateAt(t, m, p))
}

func TestFlagOutOfBounds(t *testing.T) {
	m := NewMinefield(grid.Size{Width: 1, Height: 1})
	m.Flag(grid.Point{X: 5, Y: 5}) // must not panic
}

func TestNeighbourMines(t *testing.T) {
	m := NewMinefieldWithMines(
		grid.Size{Width: 3, Height: 3},
		grid.Point{X: 0, Y: 0},
		grid.Point{X: 1, Y: 0},
		grid.Point{X: 2, Y: 2},
	)

	assert.Equal(t, 3, m.NeighbourMines(grid.Point{X: 1, Y: 1}))
	assert.Equal(t, 1, m.NeighbourMines(grid.Point{X: 0, Y: 0})) // own mine not counted
	assert.Equal(t, 2, m.NeighbourMines(grid.Point{X: 2, Y: 1}))
	assert.Equal(t, 0, m.NeighbourMines(grid.Point{X: 0, Y: 2}))
	assert.Equal(t, 0, m.NeighbourMines(grid.Point{X: -1, Y: -1}))
}

func TestRevealAllTrivialWin(t *testing.T) {
	m := NewMinefield(grid.Size{Width: 5, Height: 5})

	m.RevealAll()

	assert.True(t, m.OnlyMinesRemaining())
}

func TestOnlyMinesRemainingWithClosedWater(t *testing.T) {
	m := NewMinefield(grid.Size{Width: 2, Height: 1})

	_, opened := m.Open(grid.Point{})
	require.True(t, opened)

	assert.False(t, m.OnlyMinesRemaining())
}

func TestOnlyMinesRemainingMixed(t *testing.T) {
	m := NewMinefieldWithMines(grid.Size{Width: 2, Height: 1}, grid.Point{X: 1, Y: 0})

	_, opened := m.Open(grid.Point{})
	require.True(t, opened)

	assert.True(t, m.OnlyMinesRemaining())
}

func TestFloodFill(t *testing.T) {
	// Single mine at the middle of the right edge. Opening the far left
	// corner must cascade through every zero-count cell and stop at the
	// numbered frontier: the cells diagonal to the mine get opened with a
	// count, the mine and the cells behind the frontier stay closed.
	mine := grid.Point{X: 4, Y: 1}
	m := NewMinefieldWithMines(grid.Size{Width: 5, Height: 3}, mine)

	kind, opened := m.Open(grid.Point{})
	require.True(t, opened)
	require.Equal(t, Water, kind)

	closed := map[grid.Point]bool{
		mine:         true,
		{X: 4, Y: 0}: true,
		{X: 4, Y: 2}: true,
	}
	for y := range 3 {
		for x := range 5 {
			p := grid.Point{X: x, Y: y}
			if closed[p] {
				assert.Equal(t, Closed, stateAt(t, m, p), "expected %+v to stay closed", p)
			} else {
				assert.Equal(t, Opened, stateAt(t, m, p), "expected %+v to be opened", p)
			}
		}
	}

	// the numbered frontier carries the counts a renderer needs
	view, ok := m.CellAt(grid.Point{X: 3, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 1, view.NeighbourMines)
}

func TestFloodFillSkipsFlagged(t *testing.T) {
	m := NewMinefield(grid.Size{Width: 3, Height: 3})
	flagged := grid.Point{X: 1, Y: 1}

	m.Flag(flagged)
	m.Open(grid.Point{})

	assert.Equal(t, Flagged, stateAt(t, m, flagged))
}

func TestRevealAllKeepsFlags(t *testing.T) {
	m := NewMinefieldWithMines(grid.Size{Width: 2, Height: 2}, grid.Point{X: 1, Y: 1})

	m.Flag(grid.Point{X: 1, Y: 1})
	m.RevealAll()

	assert.Equal(t, Flagged, stateAt(t, m, grid.Point{X: 1, Y: 1}))
	assert.Equal(t, Opened, stateAt(t, m, grid.Point{}))
}

func TestCounts(t *testing.T) {
	m := NewMinefieldWithMines(
		grid.Size{Width: 3, Height: 3},
		grid.Point{X: 0, Y: 0},
		grid.Point{X: 2, Y: 2},
	)

	m.Flag(grid.Point{X: 0, Y: 0})
	m.Flag(grid.Point{X: 1, Y: 1})

	assert.Equal(t, 2, m.MineCount())
	assert.Equal(t, 2, m.FlagCount())
}
