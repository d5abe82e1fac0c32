package manager

import (
	"raysnake/game/entity"
	"raysnake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// GenerateRandomPosition draws uniform cells until one is not occupied.
// It does not return while every cell is occupied.
func (fm *FoodManager) GenerateRandomPosition(occupied func(types.Point) bool) types.Point {
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !occupied(food) {
			return food
		}
	}
}

// Respawn moves food onto a cell free of the snake and its pending growth segment.
func (fm *FoodManager) Respawn(food *entity.Food, snake *entity.Snake) {
	growth, growing := snake.GrowthCell(), snake.Growing()
	food.SetPosition(fm.GenerateRandomPosition(func(p types.Point) bool {
		return snake.Contains(p) || (growing && p == growth)
	}))
}
