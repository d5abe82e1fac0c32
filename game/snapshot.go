package game

import "raysnake/game/types"

// Snapshot is a read-only copy of the observable game state.
type Snapshot struct {
	UUID    string        `json:"uuid"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Score   int           `json:"score"`
	Games   int           `json:"games"`
	Running bool          `json:"running"`
	Food    types.Point   `json:"food"`
	Body    []types.Point `json:"body"`
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		UUID:    g.UUID,
		Width:   g.grid.Width,
		Height:  g.grid.Height,
		Score:   g.state.Score(),
		Games:   g.state.Games(),
		Running: g.state.IsRunning(),
		Food:    g.food.GetPosition(),
		Body:    g.snake.Body(),
	}
}
