package types

// Point is a position on the board, in grid cells.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies in [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the number of cells on the board, which is also the winning score.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Game constants
const (
	CellPixels    = 10 // Edge of one cell at scale 1
	StartLength   = 1
	MinScreenUnit = 10 // Screen dimensions must be multiples of this
)
