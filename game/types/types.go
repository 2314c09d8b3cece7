package types

// Point is a single cell of the logical grid, addressed by integer
// coordinates. Equality is componentwise.
type Point struct {
	X, Y int
}

// Add returns the point displaced by the given offset.
func (p Point) Add(offset Point) Point {
	return Point{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
