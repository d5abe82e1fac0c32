package game

import (
	"errors"
	"fmt"
	"time"

	"raysnake/game/entity"
	"raysnake/game/manager"
	"raysnake/game/types"

	"github.com/google/uuid"
)

// Renderer receives the draw calls of one frame.
type Renderer interface {
	DrawBoard(grid types.Grid)
	DrawTitle(title string)
	DrawScore(score int)
	DrawFood(p types.Point)
	DrawSegment(p types.Point)
	DrawGameOver()
}

// AudioSink plays fire-and-forget sound cues.
type AudioSink interface {
	Play(s types.Sound)
}

// Resource is an asset bundle held for the lifetime of a Game. Renderers and
// audio sinks that own textures or sounds implement it.
type Resource interface {
	Load() error
	Unload()
}

// Host bundles the collaborators a Game is driven by.
type Host struct {
	Input    types.Input
	Clock    manager.Clock
	Renderer Renderer
	Audio    AudioSink
}

type Config struct {
	Grid         types.Grid
	TickInterval time.Duration
	Seed         uint64 // 0 seeds from the wall clock
	KeyGuard     entity.KeyGuard
}

func DefaultConfig() Config {
	return Config{
		Grid:         types.DefaultGrid(),
		TickInterval: types.UpdateInterval,
		KeyGuard:     entity.KeyGuardSymmetric,
	}
}

var (
	ErrNoInput = errors.New("game: input provider is required")
	ErrNoClock = errors.New("game: clock is required")
)

type Game struct {
	UUID string

	grid      types.Grid
	snake     *entity.Snake
	food      *entity.Food
	scheduler *manager.Scheduler
	collision *manager.CollisionManager
	foods     *manager.FoodManager
	state     *manager.StateManager

	input     types.Input
	renderer  Renderer
	audio     AudioSink
	resources []Resource
	closed    bool
}

// NewGame builds a running game and loads the host's resources. If any load
// fails the ones already loaded are released.
func NewGame(cfg Config, host Host) (*Game, error) {
	if host.Input == nil {
		return nil, ErrNoInput
	}
	if host.Clock == nil {
		return nil, ErrNoClock
	}
	if cfg.Grid.Cells() <= len(types.InitialBody()) {
		return nil, fmt.Errorf("game: board %dx%d has no room for food", cfg.Grid.Width, cfg.Grid.Height)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		UUID:      uuid.New().String(),
		grid:      cfg.Grid,
		snake:     entity.NewSnake(),
		food:      entity.NewFood(types.Point{}),
		scheduler: manager.NewScheduler(host.Clock, cfg.TickInterval),
		collision: manager.NewCollisionManager(cfg.Grid),
		foods:     manager.NewFoodManager(cfg.Grid, seed),
		state:     manager.NewStateManager(),
		input:     host.Input,
		renderer:  host.Renderer,
		audio:     host.Audio,
	}
	g.snake.SetKeyGuard(cfg.KeyGuard)
	g.foods.Respawn(g.food, g.snake)

	for _, r := range []any{host.Renderer, host.Audio} {
		res, ok := r.(Resource)
		if !ok {
			continue
		}
		if err := res.Load(); err != nil {
			g.Close()
			return nil, fmt.Errorf("game: load resources: %w", err)
		}
		g.resources = append(g.resources, res)
	}
	return g, nil
}

// Close releases loaded resources in reverse order. Calling it again is a no-op.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	for i := len(g.resources) - 1; i >= 0; i-- {
		g.resources[i].Unload()
	}
	g.resources = nil
}

// Update advances one frame of game logic.
func (g *Game) Update() {
	if !g.state.IsRunning() && types.AnyPressed(g.input, types.ResetKeys...) {
		g.reset()
	}
	if !g.state.IsRunning() {
		return
	}

	g.snake.Update(g.scheduler, g.input)

	c := g.collision.CheckCollision(g.snake, g.food.GetPosition())
	if c.Has(manager.FoodCollision) {
		g.snake.RequestGrowth()
		g.foods.Respawn(g.food, g.snake)
		g.state.AddPoint()
		g.play(types.SoundEat)
	}
	if c.Fatal() {
		g.gameOver()
	}
}

func (g *Game) reset() {
	g.snake.Reset()
	g.foods.Respawn(g.food, g.snake)
	g.state.Restart()
}

func (g *Game) gameOver() {
	if g.state.GameOver() {
		g.play(types.SoundWall)
	}
}

func (g *Game) play(s types.Sound) {
	if g.audio != nil {
		g.audio.Play(s)
	}
}

// Draw emits this frame's draw calls to the renderer.
func (g *Game) Draw() {
	if g.renderer == nil {
		return
	}
	g.renderer.DrawBoard(g.grid)
	g.renderer.DrawTitle(types.Title)
	g.renderer.DrawScore(g.state.Score())
	if !g.state.IsRunning() {
		g.renderer.DrawGameOver()
		return
	}
	g.renderer.DrawFood(g.food.GetPosition())
	for _, p := range g.snake.Body() {
		g.renderer.DrawSegment(p)
	}
}

func (g *Game) GetScore() int {
	return g.state.Score()
}

func (g *Game) IsRunning() bool {
	return g.state.IsRunning()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food.GetPosition()
}

func (g *Game) Grid() types.Grid {
	return g.grid
}
