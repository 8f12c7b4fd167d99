// Package game implements Color Runner: the player square switches between
// two colors while bars scroll toward it, and only a bar of the same color
// can be passed through.
package game

import (
	"math"
	"time"

	"github.com/vovakirdan/color-runner/internal/config"
	"github.com/vovakirdan/color-runner/internal/core"
)

// GameID identifies Color Runner in the score history.
const GameID = "runner"

// Recorder receives the final score of every finished game.
// RecordGameEnd returns true when the score is a new high score.
type Recorder interface {
	RecordGameEnd(finalScore int) bool
	HighScore() int
}

// StepResult is returned by Tick.
type StepResult struct {
	State        core.GameState
	Ended        bool // This tick ended the game
	NewHighScore bool // The game that just ended set a new high score
}

// Game implements the Color Runner state machine.
type Game struct {
	cfg          config.RunnerConfig
	palette      core.Palette
	rec          Recorder
	gen          *Generator
	state        State
	runtime      core.RuntimeConfig
	width        int  // Play-area width in cells
	height       int  // Play-area height in cells
	newHighScore bool // Set when the last finished game beat the high score
}

// New creates an idle game with the given tuning. rec may be nil, in which
// case finished games are not recorded anywhere. Until Reset sets the real
// geometry and seed, the play area is empty and the generator uses seed 0.
func New(cfg config.RunnerConfig, rec Recorder) *Game {
	palette, err := cfg.ColorPalette()
	if err != nil {
		palette = core.DefaultPalette()
	}
	g := &Game{
		cfg:     cfg,
		palette: palette,
		rec:     rec,
		gen:     NewGenerator(0, palette),
	}
	g.Resize(0, 0)
	g.state = g.initialState()
	return g
}

// ID returns the identifier used for score history.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Color Runner"
}

// Reset starts a fresh session: idle, no obstacles yet.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.gen = NewGenerator(runtime.Seed, g.palette)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.state = g.initialState()
	g.newHighScore = false
}

// Resize updates the play-area geometry from the screen size.
// It never touches game fields; obstacles already on screen keep their positions.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.width = core.Max(screenW, 0)
	g.height = core.Max(screenH-hudRows-footerRows, 1)
}

func (g *Game) initialState() State {
	return State{
		PlayerColor: g.palette[0],
		Speed:       g.cfg.Physics.InitialSpeed,
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.state.phase()
}

// Activate handles the space bar or a tap: it starts the game from the
// welcome screen, switches color while running and does nothing after
// game over. Returns whether the state changed.
func (g *Game) Activate() bool {
	switch g.Phase() {
	case PhaseIdle:
		return g.Start()
	case PhaseRunning:
		g.state.PlayerColor = g.palette.Other(g.state.PlayerColor)
		return true
	default:
		return false
	}
}

// Start handles the start button. Only valid from the welcome screen.
func (g *Game) Start() bool {
	if g.Phase() != PhaseIdle {
		return false
	}
	g.state.Started = true
	return true
}

// Restart handles the restart button after game over. The new game waits
// on the welcome screen with one obstacle already queued at the right edge.
func (g *Game) Restart() bool {
	if g.Phase() != PhaseGameOver {
		return false
	}
	g.state = g.initialState()
	g.state.Obstacles = []Obstacle{g.gen.Next(g.width)}
	g.newHighScore = false
	return true
}

// Tick advances the simulation by dt of real time.
//
// Order within a tick: move and cull obstacles, test collisions, then
// spawn. A collision freezes speed, score and obstacles at their
// pre-tick values and reports the final score to the recorder once.
func (g *Game) Tick(dt time.Duration) StepResult {
	if g.Phase() != PhaseRunning {
		return StepResult{State: g.State()}
	}

	ms := float64(max(dt, 0)) / float64(time.Millisecond)
	speed := g.state.Speed + g.cfg.Physics.SpeedIncrement*ms
	offscreen := -g.cfg.Obstacles.Width

	obstacles := make([]Obstacle, 0, len(g.state.Obstacles)+1)
	for _, o := range g.state.Obstacles {
		o.Position -= speed * ms
		if o.Position <= offscreen {
			continue
		}
		obstacles = append(obstacles, o)
	}

	if g.collides(obstacles) {
		g.state.GameOver = true
		if g.rec != nil {
			g.newHighScore = g.rec.RecordGameEnd(g.displayScore())
		}
		return StepResult{State: g.State(), Ended: true, NewHighScore: g.newHighScore}
	}

	if n := len(obstacles); n == 0 || obstacles[n-1].Position < float64(g.width)-g.cfg.Obstacles.SpawnGap {
		obstacles = append(obstacles, g.gen.Next(g.width))
	}

	g.state.Speed = speed
	g.state.Obstacles = obstacles
	g.state.Score += ms * g.cfg.Physics.ScoreRate

	return StepResult{State: g.State()}
}

// collides reports whether any obstacle overlaps the player hitbox in a
// different color.
func (g *Game) collides(obstacles []Obstacle) bool {
	player := g.playerSpan()
	for _, o := range obstacles {
		if o.Color == g.state.PlayerColor {
			continue
		}
		if player.Overlaps(core.Span{Start: o.Position, Width: g.cfg.Obstacles.Width}) {
			return true
		}
	}
	return false
}

func (g *Game) playerSpan() core.Span {
	return core.Span{Start: g.cfg.Player.X, Width: g.cfg.Player.Size}
}

func (g *Game) displayScore() int {
	return int(math.Floor(g.state.Score))
}

func (g *Game) highScore() int {
	if g.rec == nil {
		return 0
	}
	return g.rec.HighScore()
}

// State returns the summary the platform layer uses.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.displayScore(),
		HighScore: g.highScore(),
		Started:   g.state.Started,
		GameOver:  g.state.GameOver,
	}
}
