package mines

import (
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/grid"
)

var Log = logrus.New()

type CellKind int8

const (
	Water CellKind = iota
	Mine
)

func (k CellKind) String() string {
	if k == Mine {
		return "mine"
	}
	return "water"
}

type CellState int8

const (
	Closed CellState = iota
	Flagged
	Opened
)

func (s CellState) String() string {
	switch s {
	case Flagged:
		return "flagged"
	case Opened:
		return "opened"
	default:
		return "closed"
	}
}

// open is the Closed -> Opened transition. Opened is terminal and a flagged
// cell must be unflagged first, so both are left as is.
func (s CellState) open() CellState {
	if s == Closed {
		return Opened
	}
	return s
}

// toggleFlag switches Closed <-> Flagged and leaves Opened untouched.
func (s CellState) toggleFlag() CellState {
	switch s {
	case Closed:
		return Flagged
	case Flagged:
		return Closed
	default:
		return s
	}
}

// Cell kind never changes after generation; only the state transitions.
type Cell struct {
	Kind  CellKind
	State CellState
}

// CellView is everything a renderer needs to pick a glyph for one cell.
type CellView struct {
	Kind           CellKind
	State          CellState
	NeighbourMines int
}

// Minefield owns the cell grid. All cell mutation goes through its methods.
type Minefield struct {
	cells *grid.Grid[Cell]
}

// NewMinefield builds an all-water field with every cell closed.
func NewMinefield(size grid.Size) *Minefield {
	return &Minefield{cells: grid.New(size, Cell{})}
}

// NewMinefieldWithMines builds a field with mines at exactly the given
// coordinates. Out-of-bounds points are ignored. Useful for fixed layouts.
func NewMinefieldWithMines(size grid.Size, minePoints ...grid.Point) *Minefield {
	m := NewMinefield(size)
	for _, p := range minePoints {
		if cell, ok := m.cells.At(p); ok {
			cell.Kind = Mine
		}
	}
	return m
}

func (m *Minefield) Size() grid.Size {
	return m.cells.Size()
}

// CellAt reports the render facts for the cell at p, or false when p is out
// of bounds.
func (m *Minefield) CellAt(p grid.Point) (CellView, bool) {
	cell, ok := m.cells.At(p)
	if !ok {
		return CellView{}, false
	}
	return CellView{
		Kind:           cell.Kind,
		State:          cell.State,
		NeighbourMines: m.NeighbourMines(p),
	}, true
}

// NeighbourMines counts mines among the in-bounds Moore neighbours of p.
func (m *Minefield) NeighbourMines(p grid.Point) (count int) {
	for _, n := range p.Neighbours() {
		if cell, ok := m.cells.At(n); ok && cell.Kind == Mine {
			count++
		}
	}
	return
}

// Open transitions the cell at p from Closed to Opened and reports its kind.
// Flagged, already-opened and out-of-bounds cells are left untouched and
// report false. Opening a water cell with no neighbouring mines cascades into
// all 8 neighbours; the cascade terminates without a visited set because
// Closed -> Opened is one-way and re-opening reports false immediately.
func (m *Minefield) Open(p grid.Point) (CellKind, bool) {
	cell, ok := m.cells.At(p)
	if !ok || cell.State != Closed {
		return Water, false
	}
	cell.State = cell.State.open()
	if cell.Kind == Water && m.NeighbourMines(p) == 0 {
		for _, n := range p.Neighbours() {
			m.Open(n)
		}
	}
	return cell.Kind, true
}

// Flag toggles the flag on the cell at p. Opened cells and out-of-bounds
// points are unaffected.
func (m *Minefield) Flag(p grid.Point) {
	if cell, ok := m.cells.At(p); ok {
		cell.State = cell.State.toggleFlag()
	}
}

// RevealAll opens every coordinate once, for the end-of-game board. Flagged
// cells keep their flags; everything else ends up opened.
func (m *Minefield) RevealAll() {
	for p := range m.cells.Points() {
		m.Open(p)
	}
}

// OnlyMinesRemaining is the win predicate: true iff every water cell has been
// opened. Mines may stay closed or flagged.
func (m *Minefield) OnlyMinesRemaining() bool {
	for p := range m.cells.Points() {
		if cell, _ := m.cells.At(p); cell.Kind == Water && cell.State != Opened {
			return false
		}
	}
	return true
}

func (m *Minefield) MineCount() (count int) {
	for p := range m.cells.Points() {
		if cell, _ := m.cells.At(p); cell.Kind == Mine {
			count++
		}
	}
	return
}

func (m *Minefield) FlagCount() (count int) {
	for p := range m.cells.Points() {
		if cell, _ := m.cells.At(p); cell.State == Flagged {
			count++
		}
	}
	return
}
