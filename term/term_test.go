package term

import (
	"testing"

	"raysnake/game/types"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(40, 30)
	t.Cleanup(s.Fini)
	return s
}

func TestRendererDrawsSnakeAndFood(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s, types.DefaultGrid())

	r.BeginFrame()
	r.DrawBoard(types.DefaultGrid())
	r.DrawTitle(types.Title)
	r.DrawScore(7)
	r.DrawFood(types.Point{X: 2, Y: 3})
	r.DrawSegment(types.Point{X: 6, Y: 8})
	r.DrawSegment(types.Point{X: 6, Y: 9})
	r.DrawSegment(types.Point{X: -1, Y: 9}) // off board, ignored
	r.Present()

	if got, _, _, _ := s.GetContent(0, 0); got != 'R' {
		t.Errorf("title starts with %q", got)
	}
	// Grid rows 8 and 9 share terminal row originY+4.
	got, _, style, _ := s.GetContent(originX+6, originY+4)
	if got != halfBlock {
		t.Errorf("snake cell rune = %q, want half block", got)
	}
	fg, bg, _ := style.Decompose()
	if fg != lightColor || bg != lightColor {
		t.Errorf("snake cell colors fg=%v bg=%v", fg, bg)
	}
	// Food on odd row 3 is the bottom half of terminal row originY+1.
	_, _, style, _ = s.GetContent(originX+2, originY+1)
	if fg, bg, _ := style.Decompose(); fg != darkColor || bg != foodColor {
		t.Errorf("food cell colors fg=%v bg=%v", fg, bg)
	}
	if got, _, _, _ := s.GetContent(originX-1, originY+r.Rows()+1); got != '7' {
		t.Errorf("score rune = %q, want '7'", got)
	}
	if got, _, _, _ := s.GetContent(originX-1, originY-1); got != tcell.RuneULCorner {
		t.Errorf("border corner = %q", got)
	}
}

func TestRendererGameOver(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s, types.DefaultGrid())
	r.BeginFrame()
	r.DrawBoard(types.DefaultGrid())
	r.DrawGameOver()
	r.Present()

	x := originX + (types.CellsWidth-len("Game Over"))/2
	if got, _, _, _ := s.GetContent(x, originY+r.Rows()/2); got != 'G' {
		t.Errorf("game over text missing, got %q", got)
	}

	r.BeginFrame()
	r.Present()
	if got, _, _, _ := s.GetContent(x, originY+r.Rows()/2); got == 'G' {
		t.Error("game over text should not persist into the next frame")
	}
}

func TestInputIsEdgeTriggered(t *testing.T) {
	events := make(chan tcell.Event, 8)
	in := NewInput(events)

	events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone)
	in.Poll()
	if !in.IsKeyPressed(types.KeyUp) || !in.IsKeyPressed(types.KeyD) {
		t.Error("keys pressed since the last frame should be reported")
	}
	if in.IsKeyPressed(types.KeySpace) {
		t.Error("space was not pressed")
	}

	in.Poll()
	if in.IsKeyPressed(types.KeyUp) || in.IsKeyPressed(types.KeyD) {
		t.Error("a press must only last one frame")
	}
}

func TestInputQuit(t *testing.T) {
	events := make(chan tcell.Event, 1)
	in := NewInput(events)
	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	in.Poll()
	if !in.Quit() {
		t.Error("q should quit")
	}

	closed := make(chan tcell.Event)
	close(closed)
	in = NewInput(closed)
	in.Poll()
	if !in.Quit() {
		t.Error("a closed event stream should quit")
	}
}

func TestInputResize(t *testing.T) {
	events := make(chan tcell.Event, 1)
	in := NewInput(events)
	events <- tcell.NewEventResize(80, 24)
	in.Poll()
	if !in.Resized() {
		t.Error("resize not reported")
	}
}
