package grid

import "iter"

// Grid is a dense 2D container with an extent fixed at construction. Cells
// are stored in a flat slice, row-major (y*Width+x).
type Grid[T any] struct {
	size  Size
	cells []T
}

// New builds a size.Cells() grid with every cell set to def.
func New[T any](size Size, def T) *Grid[T] {
	cells := make([]T, size.Cells())
	for i := range cells {
		cells[i] = def
	}
	return &Grid[T]{size: size, cells: cells}
}

func (g *Grid[T]) Size() Size {
	return g.size
}

// At returns a pointer to the cell at p, or (nil, false) when p lies outside
// the grid. Every cell access funnels through this one bounds check, negative
// coordinates included.
func (g *Grid[T]) At(p Point) (*T, bool) {
	if !g.size.Contains(p) {
		return nil, false
	}
	return &g.cells[p.Y*g.size.Width+p.X], true
}

// Points yields every valid coordinate in deterministic order, rows first.
// The sequence is restartable: ranging over it again walks the grid again.
func (g *Grid[T]) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range g.size.Height {
			for x := range g.size.Width {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
