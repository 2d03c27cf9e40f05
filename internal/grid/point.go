package grid

// Point is a cell coordinate. The zero value is the top-left corner.
type Point struct {
	X, Y int
}

// Neighbours returns the 8 Moore neighbourhood coordinates around p. They
// are not bounds-checked; callers filter them through [Grid.At] or
// [Size.Contains].
func (p Point) Neighbours() []Point {
	return []Point{
		{p.X - 1, p.Y - 1}, {p.X, p.Y - 1}, {p.X + 1, p.Y - 1},
		{p.X - 1, p.Y}, {p.X + 1, p.Y},
		{p.X - 1, p.Y + 1}, {p.X, p.Y + 1}, {p.X + 1, p.Y + 1},
	}
}

// Clamp clips p into [0,width) x [0,height).
func (p Point) Clamp(s Size) Point {
	return Point{
		X: min(max(p.X, 0), s.Width-1),
		Y: min(max(p.Y, 0), s.Height-1),
	}
}

// Size is the extent of a grid.
type Size struct {
	Width, Height int
}

func (s Size) Contains(p Point) bool {
	return 0 <= p.X && p.X < s.Width && 0 <= p.Y && p.Y < s.Height
}

func (s Size) Cells() int {
	return s.Width * s.Height
}
