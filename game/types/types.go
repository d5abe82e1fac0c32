package types

import (
	"fmt"
	"time"
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the playable area.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the board capacity.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Point identifies a single grid cell. It doubles as a unit direction vector.
type Point struct {
	X, Y int
}

// Add returns the cell one step from p along d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Inverse returns the opposite vector.
func (p Point) Inverse() Point {
	return Point{X: -p.X, Y: -p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Unit direction vectors
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Game constants
const (
	CellSize    = 30
	CellsWidth  = 25
	CellsHeight = 40
	Offset      = 75 // Border margin around the board, in pixels

	UpdateInterval = 100 * time.Millisecond
	TargetFPS      = 165
	Title          = "RaySnake"
)

// InitialBody returns the starting snake, head first.
func InitialBody() []Point {
	return []Point{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}
}

// InitialDirection is the heading of a freshly built snake.
var InitialDirection = Right

// DefaultGrid is the standard 25x40 board.
func DefaultGrid() Grid {
	return Grid{Width: CellsWidth, Height: CellsHeight}
}
