package term

import (
	"unicode"

	"raysnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Input turns tcell key events into per-frame presses. Events that arrive
// between two Poll calls count as pressed for exactly the frame after them.
type Input struct {
	events  <-chan tcell.Event
	pressed map[types.Key]bool
	quit    bool
	resized bool
}

func NewInput(events <-chan tcell.Event) *Input {
	return &Input{
		events:  events,
		pressed: make(map[types.Key]bool),
	}
}

// Listen forwards screen events to a channel until the screen is finalized.
func Listen(screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}

// Poll drains pending events into this frame's key set.
func (in *Input) Poll() {
	clear(in.pressed)
	in.resized = false
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				in.quit = true
				return
			}
			in.handle(ev)
		default:
			return
		}
	}
}

func (in *Input) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		in.resized = true
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.quit = true
		case tcell.KeyUp:
			in.pressed[types.KeyUp] = true
		case tcell.KeyDown:
			in.pressed[types.KeyDown] = true
		case tcell.KeyLeft:
			in.pressed[types.KeyLeft] = true
		case tcell.KeyRight:
			in.pressed[types.KeyRight] = true
		case tcell.KeyRune:
			in.handleRune(unicode.ToLower(ev.Rune()))
		}
	}
}

func (in *Input) handleRune(r rune) {
	switch r {
	case 'w':
		in.pressed[types.KeyW] = true
	case 's':
		in.pressed[types.KeyS] = true
	case 'a':
		in.pressed[types.KeyA] = true
	case 'd':
		in.pressed[types.KeyD] = true
	case ' ':
		in.pressed[types.KeySpace] = true
	case 'q':
		in.quit = true
	}
}

func (in *Input) IsKeyPressed(k types.Key) bool {
	return in.pressed[k]
}

// Quit reports whether the player asked to leave.
func (in *Input) Quit() bool {
	return in.quit
}

// Resized reports a terminal resize during the last Poll.
func (in *Input) Resized() bool {
	return in.resized
}
