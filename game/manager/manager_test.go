package manager

import (
	"testing"
	"time"

	"raysnake/game/entity"
	"raysnake/game/types"
)

type keys map[types.Key]bool

func (k keys) IsKeyPressed(key types.Key) bool { return k[key] }

type alwaysDue struct{}

func (alwaysDue) Due() bool { return true }

func TestSchedulerFiresOncePerInterval(t *testing.T) {
	clock := NewManualClock()
	s := NewScheduler(clock, 100*time.Millisecond)

	if s.Due() {
		t.Error("tick at t=0 before the interval passed")
	}
	clock.Advance(60 * time.Millisecond)
	if s.Due() {
		t.Error("tick at 60ms")
	}
	clock.Advance(40 * time.Millisecond)
	if !s.Due() {
		t.Fatal("expected tick at 100ms")
	}
	if s.Due() {
		t.Error("second tick without time passing")
	}
	clock.Advance(99 * time.Millisecond)
	if s.Due() {
		t.Error("tick before a full interval since the last one")
	}
	clock.Advance(time.Millisecond)
	if !s.Due() {
		t.Error("expected tick at 200ms")
	}
}

func TestSchedulerLongGapFiresOnce(t *testing.T) {
	clock := NewManualClock()
	s := NewScheduler(clock, 100*time.Millisecond)
	clock.Advance(time.Second)
	if !s.Due() || s.Due() {
		t.Error("a long gap should produce exactly one tick")
	}
}

func TestIndependentSchedulers(t *testing.T) {
	clock := NewManualClock()
	a := NewScheduler(clock, 100*time.Millisecond)
	b := NewScheduler(clock, 100*time.Millisecond)
	clock.Advance(100 * time.Millisecond)
	if !a.Due() || !b.Due() {
		t.Error("schedulers must not share their last tick")
	}
}

func TestGenerateRandomPositionAvoidsOccupied(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 3}
	fm := NewFoodManager(grid, 7)
	occupied := map[types.Point]bool{}
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			if x != 2 || y != 1 {
				occupied[types.Point{X: x, Y: y}] = true
			}
		}
	}
	for i := 0; i < 50; i++ {
		p := fm.GenerateRandomPosition(func(p types.Point) bool { return occupied[p] })
		if p != (types.Point{X: 2, Y: 1}) {
			t.Fatalf("got %v, the only free cell is (2,1)", p)
		}
	}
}

func TestGenerateRandomPositionInBounds(t *testing.T) {
	grid := types.DefaultGrid()
	fm := NewFoodManager(grid, 42)
	snake := entity.NewSnake()
	for i := 0; i < 1000; i++ {
		p := fm.GenerateRandomPosition(snake.Contains)
		if !grid.Contains(p) || snake.Contains(p) {
			t.Fatalf("bad food cell %v", p)
		}
	}
}

func TestRespawnAvoidsGrowthCell(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 1}
	fm := NewFoodManager(grid, 3)
	snake := entity.NewSnake()
	// Body (6,9),(5,9),(4,9) is off this tiny board, so only the growth cell is excluded.
	snake.RequestGrowth()
	snake.SetDirection(types.Point{X: -3, Y: -9}) // growth cell becomes (1,0)
	food := entity.NewFood(types.Point{})
	for i := 0; i < 100; i++ {
		fm.Respawn(food, snake)
		if food.GetPosition() == (types.Point{X: 1, Y: 0}) {
			t.Fatal("food placed on the pending growth cell")
		}
	}
}

func TestSameSeedSameFood(t *testing.T) {
	a := NewFoodManager(types.DefaultGrid(), 99)
	b := NewFoodManager(types.DefaultGrid(), 99)
	never := func(types.Point) bool { return false }
	for i := 0; i < 10; i++ {
		if a.GenerateRandomPosition(never) != b.GenerateRandomPosition(never) {
			t.Fatal("placement is not deterministic for a fixed seed")
		}
	}
}

func TestCollisionFood(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	snake := entity.NewSnake()
	c := cm.CheckCollision(snake, snake.GetHead())
	if !c.Has(FoodCollision) || c.Fatal() {
		t.Errorf("collision = %b, want food only", c)
	}
	if cm.CheckCollision(snake, types.Point{X: 0, Y: 0}) != 0 {
		t.Error("no collision expected")
	}
}

func TestCollisionWalls(t *testing.T) {
	grid := types.DefaultGrid()
	cm := NewCollisionManager(grid)

	// Drive right until the head leaves the board.
	snake := entity.NewSnake()
	for !cm.CheckCollision(snake, types.Point{X: -5, Y: -5}).Fatal() {
		snake.Move()
	}
	if head := snake.GetHead(); head.X != grid.Width {
		t.Errorf("head = %v, want x=%d", head, grid.Width)
	}

	// Drive up.
	snake = entity.NewSnake()
	snake.HandleInput(keys{types.KeyUp: true})
	for !cm.CheckCollision(snake, types.Point{X: -5, Y: -5}).Has(WallCollision) {
		snake.Move()
	}
	if head := snake.GetHead(); head.Y != -1 {
		t.Errorf("head = %v, want y=-1", head)
	}
}

func TestCollisionSelf(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	snake := entity.NewSnake()
	for i := 0; i < 3; i++ {
		snake.RequestGrowth()
		snake.Update(alwaysDue{}, keys{})
		snake.Move()
	}
	if snake.Len() != 6 {
		t.Fatalf("len = %d, want 6", snake.Len())
	}
	// Length 6: turn down, left, up to bite the neck.
	for _, k := range []types.Key{types.KeyDown, types.KeyLeft, types.KeyUp} {
		snake.HandleInput(keys{k: true})
		snake.Move()
		if k != types.KeyUp && cm.IsSelfCollision(snake) {
			t.Fatalf("unexpected self collision at %v", snake.GetHead())
		}
	}
	c := cm.CheckCollision(snake, types.Point{X: -5, Y: -5})
	if !c.Has(SelfCollision) {
		t.Errorf("expected self collision, head %v body %v", snake.GetHead(), snake.Body())
	}
}

func TestStateManagerTransitions(t *testing.T) {
	sm := NewStateManager()
	if !sm.IsRunning() || sm.Score() != 0 {
		t.Fatal("fresh session should be running with score 0")
	}
	sm.AddPoint()
	sm.AddPoint()
	if !sm.GameOver() {
		t.Error("first GameOver should transition")
	}
	if sm.GameOver() {
		t.Error("second GameOver should be a no-op")
	}
	if sm.Score() != 2 || sm.State() != GameOver || sm.Games() != 1 {
		t.Errorf("score=%d state=%v games=%d", sm.Score(), sm.State(), sm.Games())
	}
	sm.Restart()
	if !sm.IsRunning() || sm.Score() != 0 {
		t.Error("restart should clear score and resume")
	}
}
