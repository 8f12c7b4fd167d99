package game

import "github.com/vovakirdan/color-runner/internal/core"

// Phase is the position of a game in its lifecycle.
type Phase int

const (
	PhaseIdle     Phase = iota // Welcome screen, waiting for the first activate
	PhaseRunning               // Obstacles move and score accrues
	PhaseGameOver              // Frozen until an explicit restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Obstacle is a full-height bar scrolling toward the player.
// The player survives contact only while wearing the same color.
type Obstacle struct {
	ID       string
	Position float64 // Left edge in cells; decreases over time
	Color    core.Color
}

// State is the canonical game record. It is owned by a single Game and
// only ever mutated from Tick or the input transitions.
type State struct {
	PlayerColor core.Color
	Speed       float64 // cells per ms
	Score       float64
	GameOver    bool
	Started     bool
	Obstacles   []Obstacle // spawn order, oldest first
}

// phase derives the lifecycle phase from the two flags.
func (s State) phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.Started:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// Snapshot is a read-only copy of the game for renderers and tests.
type Snapshot struct {
	Phase        Phase
	PlayerColor  core.Color
	Speed        float64
	Score        float64
	DisplayScore int
	HighScore    int
	NewHighScore bool // The finished game beat the previous high score
	Obstacles    []Obstacle
	Width        int // Play-area width in cells
	Height       int // Play-area height in cells
}

// Snapshot returns a copy of the current state safe to hold across ticks.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.state.Obstacles))
	copy(obstacles, g.state.Obstacles)

	return Snapshot{
		Phase:        g.state.phase(),
		PlayerColor:  g.state.PlayerColor,
		Speed:        g.state.Speed,
		Score:        g.state.Score,
		DisplayScore: g.displayScore(),
		HighScore:    g.highScore(),
		NewHighScore: g.newHighScore,
		Obstacles:    obstacles,
		Width:        g.width,
		Height:       g.height,
	}
}
