package ui

import (
	"fmt"
	"os"

	"raysnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	DarkColor  = rl.Color{R: 63, G: 41, B: 30, A: 255}
	LightColor = rl.Color{R: 253, G: 202, B: 85, A: 255}
)

const (
	borderPadding   = 5
	borderThickness = 5
	titleFontSize   = 40
	scoreFontSize   = 40
	gameOverSize    = 100
	segmentRound    = 0.5
	segmentSegments = 6
)

// Layout places board cells on screen.
type Layout struct {
	CellSize int32
	Offset   int32
	Grid     types.Grid
}

func DefaultLayout() Layout {
	return Layout{
		CellSize: types.CellSize,
		Offset:   types.Offset,
		Grid:     types.DefaultGrid(),
	}
}

// ScreenSize returns the window size needed for the board and its margins.
func (l Layout) ScreenSize() (int32, int32) {
	return l.CellSize*int32(l.Grid.Width) + l.Offset*2, l.CellSize*int32(l.Grid.Height) + l.Offset*2
}

// Cell returns the screen position of the top-left corner of p.
func (l Layout) Cell(p types.Point) (int32, int32) {
	return l.Offset + int32(p.X)*l.CellSize, l.Offset + int32(p.Y)*l.CellSize
}

// Renderer draws the game with raylib. It owns the food texture.
type Renderer struct {
	layout      Layout
	texturePath string
	foodTexture rl.Texture2D
	loaded      bool
}

func NewRenderer(layout Layout, texturePath string) *Renderer {
	return &Renderer{
		layout:      layout,
		texturePath: texturePath,
	}
}

// Load uploads the food texture. A missing image file falls back to a plain tile.
func (r *Renderer) Load() error {
	var image *rl.Image
	if _, err := os.Stat(r.texturePath); err == nil {
		image = rl.LoadImage(r.texturePath)
	} else {
		image = rl.GenImageColor(int(r.layout.CellSize), int(r.layout.CellSize), rl.White)
	}
	r.foodTexture = rl.LoadTextureFromImage(image)
	rl.UnloadImage(image)
	if r.foodTexture.ID == 0 {
		return fmt.Errorf("ui: load texture %s", r.texturePath)
	}
	r.loaded = true
	return nil
}

func (r *Renderer) Unload() {
	if !r.loaded {
		return
	}
	rl.UnloadTexture(r.foodTexture)
	r.loaded = false
}

// BeginFrame starts a frame on the dark background.
func (r *Renderer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(DarkColor)
}

func (r *Renderer) EndFrame() {
	rl.EndDrawing()
}

func (r *Renderer) DrawBoard(grid types.Grid) {
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      float32(r.layout.Offset - borderPadding),
		Y:      float32(r.layout.Offset - borderPadding),
		Width:  float32(r.layout.CellSize*int32(grid.Width) + borderPadding*2),
		Height: float32(r.layout.CellSize*int32(grid.Height) + borderPadding*2),
	}, borderThickness, LightColor)
}

func (r *Renderer) DrawTitle(title string) {
	rl.DrawText(title, r.layout.Offset-borderPadding, 20, titleFontSize, LightColor)
}

func (r *Renderer) DrawScore(score int) {
	y := r.layout.Offset + r.layout.CellSize*int32(r.layout.Grid.Height) + 10
	rl.DrawText(fmt.Sprintf("%d", score), r.layout.Offset-borderPadding, y, scoreFontSize, LightColor)
}

func (r *Renderer) DrawFood(p types.Point) {
	x, y := r.layout.Cell(p)
	if !r.loaded {
		rl.DrawRectangle(x, y, r.layout.CellSize, r.layout.CellSize, LightColor)
		return
	}
	rl.DrawTexture(r.foodTexture, x, y, LightColor)
}

func (r *Renderer) DrawSegment(p types.Point) {
	x, y := r.layout.Cell(p)
	rl.DrawRectangleRounded(rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(r.layout.CellSize),
		Height: float32(r.layout.CellSize),
	}, segmentRound, segmentSegments, LightColor)
}

func (r *Renderer) DrawGameOver() {
	const text = "Game Over"
	w, h := r.layout.ScreenSize()
	textWidth := rl.MeasureText(text, gameOverSize)
	rl.DrawText(text, (w-textWidth)/2, h/2-80, gameOverSize, LightColor)
}
