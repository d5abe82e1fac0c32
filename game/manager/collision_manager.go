package manager

import (
	"raysnake/game/entity"
	"raysnake/game/types"
)

// Collision is a set of collision flags found in one evaluation.
type Collision uint8

const (
	FoodCollision Collision = 1 << iota
	WallCollision
	SelfCollision
)

// Has reports whether c includes flag.
func (c Collision) Has(flag Collision) bool {
	return c&flag != 0
}

// Fatal reports whether c ends the round.
func (c Collision) Fatal() bool {
	return c.Has(WallCollision) || c.Has(SelfCollision)
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision evaluates the snake's head against food, walls and its own body.
// Every check runs; an eaten food does not hide a fatal collision.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, food types.Point) Collision {
	head := snake.GetHead()
	var c Collision
	if cm.IsFoodCollision(head, food) {
		c |= FoodCollision
	}
	if cm.IsWallCollision(head) {
		c |= WallCollision
	}
	if cm.IsSelfCollision(snake) {
		c |= SelfCollision
	}
	return c
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos, food types.Point) bool {
	return pos == food
}

// IsWallCollision reports a head that has left the board.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision reports a head sitting on any other segment.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.ContainsAfterHead(snake.GetHead())
}
