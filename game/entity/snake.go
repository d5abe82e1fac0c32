package entity

import (
	"raysnake/game/types"

	"github.com/gammazero/deque"
)

// KeyGuard selects how the anti-reversal check applies to the two keys bound
// to each direction.
type KeyGuard int

const (
	// KeyGuardSymmetric blocks a 180° turn from either key.
	KeyGuardSymmetric KeyGuard = iota
	// KeyGuardLegacy only guards the letter key; the arrow key always turns.
	KeyGuardLegacy
)

// Pacer decides whether a timed move is due.
type Pacer interface {
	Due() bool
}

type binding struct {
	arrow, letter types.Key
	dir           types.Point
}

// Checked in this order; a later match overrides an earlier one.
var bindings = []binding{
	{types.KeyUp, types.KeyW, types.Up},
	{types.KeyDown, types.KeyS, types.Down},
	{types.KeyRight, types.KeyD, types.Right},
	{types.KeyLeft, types.KeyA, types.Left},
}

type Snake struct {
	body          deque.Deque[types.Point] // front is the head
	direction     types.Point
	lastDirection types.Point // direction of the most recent timed move
	addingSegment bool
	guard         KeyGuard
}

func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset rebuilds the starting snake heading right.
func (s *Snake) Reset() {
	s.body.Clear()
	for _, p := range types.InitialBody() {
		s.body.PushBack(p)
	}
	s.direction = types.InitialDirection
	s.lastDirection = types.InitialDirection
	s.addingSegment = false
}

func (s *Snake) SetKeyGuard(g KeyGuard) {
	s.guard = g
}

// RequestGrowth makes the next Update add a tail segment instead of moving.
func (s *Snake) RequestGrowth() {
	s.addingSegment = true
}

// Growing reports whether a growth is pending.
func (s *Snake) Growing() bool {
	return s.addingSegment
}

// Update grows or, when the pacer allows it, moves the snake, then reads input.
func (s *Snake) Update(pacer Pacer, in types.Input) {
	if s.addingSegment {
		s.body.PushBack(s.GrowthCell())
		s.addingSegment = false
	} else if pacer.Due() {
		s.Move()
	}
	s.HandleInput(in)
}

// Move drops the tail and pushes a new head one step ahead.
func (s *Snake) Move() {
	s.body.PopBack()
	s.body.PushFront(s.body.Front().Add(s.direction))
	s.lastDirection = s.direction
}

// HandleInput applies direction keys pressed this frame.
func (s *Snake) HandleInput(in types.Input) {
	for _, b := range bindings {
		if s.turnRequested(in, b) {
			s.direction = b.dir
		}
	}
}

func (s *Snake) turnRequested(in types.Input, b binding) bool {
	allowed := b.dir != s.lastDirection.Inverse()
	if s.guard == KeyGuardLegacy {
		return in.IsKeyPressed(b.arrow) || (in.IsKeyPressed(b.letter) && allowed)
	}
	return (in.IsKeyPressed(b.arrow) || in.IsKeyPressed(b.letter)) && allowed
}

// SetDirection points the snake along dir without any reversal check.
func (s *Snake) SetDirection(dir types.Point) {
	s.direction = dir
}

func (s *Snake) Direction() types.Point {
	return s.direction
}

// LastDirection is the direction used by the most recent timed move.
func (s *Snake) LastDirection() types.Point {
	return s.lastDirection
}

func (s *Snake) GetHead() types.Point {
	return s.body.Front()
}

func (s *Snake) GetTail() types.Point {
	return s.body.Back()
}

// GrowthCell is where a pending growth segment will be appended.
func (s *Snake) GrowthCell() types.Point {
	return s.body.Back().Add(s.direction)
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p types.Point) bool {
	return s.indexFrom(0, p)
}

// ContainsAfterHead reports whether any segment other than the head occupies p.
func (s *Snake) ContainsAfterHead(p types.Point) bool {
	return s.indexFrom(1, p)
}

func (s *Snake) indexFrom(start int, p types.Point) bool {
	for i := start; i < s.body.Len(); i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}
