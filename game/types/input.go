package types

// Key is a physical key the game listens to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyS
	KeyA
	KeyD
	KeySpace
)

// Input reports edge-triggered key presses: true exactly once per physical press,
// on the frame the press happened.
type Input interface {
	IsKeyPressed(k Key) bool
}

// ResetKeys are the keys that restart a finished round.
var ResetKeys = []Key{KeyUp, KeyDown, KeyRight, KeyLeft, KeyW, KeyS, KeyD, KeyA, KeySpace}

// AnyPressed reports whether any of keys was pressed this frame.
func AnyPressed(in Input, keys ...Key) bool {
	for _, k := range keys {
		if in.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Sound is a fire-and-forget audio cue.
type Sound int

const (
	SoundEat Sound = iota
	SoundWall
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundWall:
		return "wall"
	default:
		return "unknown"
	}
}
