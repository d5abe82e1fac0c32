package manager

// State is the session phase.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "running"
}

// StateManager owns the score and the running/game-over phase.
type StateManager struct {
	state State
	score int
	games int
}

func NewStateManager() *StateManager {
	return &StateManager{state: Running}
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) IsRunning() bool {
	return sm.state == Running
}

func (sm *StateManager) Score() int {
	return sm.score
}

// Games counts finished rounds.
func (sm *StateManager) Games() int {
	return sm.games
}

func (sm *StateManager) AddPoint() {
	sm.score++
}

// GameOver ends the round. It returns false if the round had already ended.
func (sm *StateManager) GameOver() bool {
	if sm.state == GameOver {
		return false
	}
	sm.state = GameOver
	sm.games++
	return true
}

// Restart clears the score and resumes play.
func (sm *StateManager) Restart() {
	sm.score = 0
	sm.state = Running
}
