package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/grid"
)

// Generator places mines uniformly at random without replacement.
type Generator struct {
	Rand *rand.Rand
}

// Generate builds a minefield with exactly mineCount mines. A mine count that
// does not fit the extent is a configuration error: no partial field is ever
// returned. Placement uses rejection sampling, which is fine for the small
// boards this game targets and degrades as mineCount approaches the cell
// count.
func (g *Generator) Generate(size grid.Size, mineCount int) (*Minefield, error) {
	if size.Width < 1 || size.Height < 1 {
		return nil, fmt.Errorf("field extent must be positive, got %dx%d", size.Width, size.Height)
	}
	if mineCount > size.Cells() {
		return nil, fmt.Errorf(
			"cannot place %d mines on a %dx%d field of %d cells",
			mineCount, size.Width, size.Height, size.Cells(),
		)
	}

	m := NewMinefield(size)
	placed := 0
	for placed < mineCount {
		p := grid.Point{X: g.Rand.IntN(size.Width), Y: g.Rand.IntN(size.Height)}
		cell, _ := m.cells.At(p)
		if cell.Kind == Water {
			cell.Kind = Mine
			placed++
		}
	}

	Log.WithFields(logrus.Fields{
		"width":  size.Width,
		"height": size.Height,
		"mines":  mineCount,
	}).Debug("minefield generated")

	return m, nil
}
