package term

import (
	"fmt"

	"raysnake/game/types"

	"github.com/gdamore/tcell/v2"
)

var (
	darkColor  = tcell.NewRGBColor(63, 41, 30)
	lightColor = tcell.NewRGBColor(253, 202, 85)
	foodColor  = tcell.NewRGBColor(214, 69, 65)

	baseStyle = tcell.StyleDefault.Foreground(lightColor).Background(darkColor)
)

const halfBlock = '▀'

type cell uint8

const (
	cellEmpty cell = iota
	cellSnake
	cellFood
)

// Board origin on screen: a title row, then the top border.
const (
	originX = 1
	originY = 2
)

// Renderer draws the board with half-block characters, two grid rows per
// terminal row. Draw calls fill a buffer that Present flushes to the screen.
type Renderer struct {
	screen   tcell.Screen
	grid     types.Grid
	cells    []cell
	title    string
	score    int
	gameOver bool
}

func NewRenderer(screen tcell.Screen, grid types.Grid) *Renderer {
	return &Renderer{
		screen: screen,
		grid:   grid,
		cells:  make([]cell, grid.Cells()),
	}
}

// BeginFrame clears the frame buffer.
func (r *Renderer) BeginFrame() {
	clear(r.cells)
	r.gameOver = false
}

func (r *Renderer) DrawBoard(grid types.Grid) {
	if grid != r.grid {
		r.grid = grid
		r.cells = make([]cell, grid.Cells())
	}
}

func (r *Renderer) DrawTitle(title string) { r.title = title }

func (r *Renderer) DrawScore(score int) { r.score = score }

func (r *Renderer) DrawFood(p types.Point) { r.set(p, cellFood) }

func (r *Renderer) DrawSegment(p types.Point) { r.set(p, cellSnake) }

func (r *Renderer) DrawGameOver() { r.gameOver = true }

// Off-board cells (a head that just crossed the wall) are not drawn.
func (r *Renderer) set(p types.Point, c cell) {
	if r.grid.Contains(p) {
		r.cells[p.Y*r.grid.Width+p.X] = c
	}
}

func (r *Renderer) at(x, y int) cell {
	if y >= r.grid.Height {
		return cellEmpty
	}
	return r.cells[y*r.grid.Width+x]
}

// Rows returns the number of terminal rows the board occupies.
func (r *Renderer) Rows() int {
	return (r.grid.Height + 1) / 2
}

// Present writes the frame to the screen.
func (r *Renderer) Present() {
	s := r.screen
	s.SetStyle(baseStyle)
	s.Clear()

	r.text(originX-1, 0, r.title, baseStyle.Bold(true))
	r.border()

	for row := 0; row < r.Rows(); row++ {
		for x := 0; x < r.grid.Width; x++ {
			top, bottom := r.at(x, row*2), r.at(x, row*2+1)
			if top == cellEmpty && bottom == cellEmpty {
				s.SetContent(originX+x, originY+row, ' ', nil, baseStyle)
				continue
			}
			style := tcell.StyleDefault.Foreground(color(top)).Background(color(bottom))
			s.SetContent(originX+x, originY+row, halfBlock, nil, style)
		}
	}

	if r.gameOver {
		msg := "Game Over"
		r.text(originX+(r.grid.Width-len(msg))/2, originY+r.Rows()/2, msg, baseStyle.Bold(true))
	}
	r.text(originX-1, originY+r.Rows()+1, fmt.Sprintf("%d", r.score), baseStyle)
	s.Show()
}

func (r *Renderer) border() {
	left, right := originX-1, originX+r.grid.Width
	top, bottom := originY-1, originY+r.Rows()
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, baseStyle)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, baseStyle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, baseStyle)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, baseStyle)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, baseStyle)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, baseStyle)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, baseStyle)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, baseStyle)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func color(c cell) tcell.Color {
	switch c {
	case cellSnake:
		return lightColor
	case cellFood:
		return foodColor
	default:
		return darkColor
	}
}
