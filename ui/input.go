package ui

import (
	"time"

	"raysnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCodes = map[types.Key]int32{
	types.KeyUp:    rl.KeyUp,
	types.KeyDown:  rl.KeyDown,
	types.KeyLeft:  rl.KeyLeft,
	types.KeyRight: rl.KeyRight,
	types.KeyW:     rl.KeyW,
	types.KeyS:     rl.KeyS,
	types.KeyA:     rl.KeyA,
	types.KeyD:     rl.KeyD,
	types.KeySpace: rl.KeySpace,
}

// Input reads raylib's per-frame key presses.
type Input struct{}

func (Input) IsKeyPressed(k types.Key) bool {
	code, ok := keyCodes[k]
	return ok && rl.IsKeyPressed(code)
}

// Clock reports the time since the window was opened.
type Clock struct{}

func (Clock) Elapsed() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}
