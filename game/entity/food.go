package entity

import "raysnake/game/types"

// Food holds the single active food cell.
type Food struct {
	position types.Point
}

func NewFood(pos types.Point) *Food {
	return &Food{position: pos}
}

func (f *Food) SetPosition(p types.Point) {
	f.position = p
}

func (f *Food) GetPosition() types.Point {
	return f.position
}
