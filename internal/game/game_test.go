package game

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/color-runner/internal/config"
	"github.com/vovakirdan/color-runner/internal/core"
)

const (
	coral = core.Color("#FF6B6B")
	teal  = core.Color("#4ECDC4")
)

// fakeRecorder keeps the high score in memory and remembers every report.
type fakeRecorder struct {
	high  int
	ended []int
}

func (f *fakeRecorder) RecordGameEnd(finalScore int) bool {
	f.ended = append(f.ended, finalScore)
	if finalScore > f.high {
		f.high = finalScore
		return true
	}
	return false
}

func (f *fakeRecorder) HighScore() int {
	return f.high
}

// rowText returns one screen row without colors.
func rowText(s *core.Screen, y int) string {
	var sb strings.Builder
	for x, w := 0, s.Width(); x < w; x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

// screenText returns the whole screen without colors, one line per row.
func screenText(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

// browserConfig uses pixel-scale tuning: speed 0.6/ms, 35 wide obstacles,
// player hitbox spanning 25..50 and a 300 spawn gap.
func browserConfig() config.RunnerConfig {
	return config.RunnerConfig{
		Physics: config.RunnerPhysics{
			InitialSpeed:   0.6,
			SpeedIncrement: 0.00001,
			ScoreRate:      0.01,
		},
		Obstacles: config.RunnerObstacles{
			Width:    35,
			SpawnGap: 300,
		},
		Player: config.RunnerPlayer{
			X:    25,
			Size: 25,
		},
		Palette: []string{string(coral), string(teal)},
	}
}

func newGame(t *testing.T, width int) (*Game, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	g := New(browserConfig(), rec)
	g.Reset(core.RuntimeConfig{ScreenW: width, ScreenH: 600, TickRate: 60, Seed: 42})
	return g, rec
}

func newRunningGame(t *testing.T, width int) (*Game, *fakeRecorder) {
	t.Helper()
	g, rec := newGame(t, width)
	if !g.Start() {
		t.Fatal("Start() from idle should succeed")
	}
	return g, rec
}

func TestInitialState(t *testing.T) {
	g, _ := newGame(t, 800)

	if g.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", g.Phase())
	}
	if g.state.PlayerColor != coral {
		t.Errorf("Player should start with the first palette color, got %q", g.state.PlayerColor)
	}
	if g.state.Speed != 0.6 {
		t.Errorf("Speed = %v, expected 0.6", g.state.Speed)
	}
	if len(g.state.Obstacles) != 0 {
		t.Errorf("A fresh session should have no obstacles, got %d", len(g.state.Obstacles))
	}
}

func TestTickWhileIdleIsNoop(t *testing.T) {
	g, rec := newGame(t, 800)
	before := g.Snapshot()

	res := g.Tick(16 * time.Millisecond)

	if res.Ended {
		t.Error("Idle tick should not end the game")
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Errorf("Idle tick changed state:\nbefore %+v\nafter  %+v", before, g.Snapshot())
	}
	if len(rec.ended) != 0 {
		t.Error("Idle tick should not report to the recorder")
	}
}

func TestFirstTickSpawnsObstacleAtRightEdge(t *testing.T) {
	g, _ := newRunningGame(t, 800)

	g.Tick(16 * time.Millisecond)

	if len(g.state.Obstacles) != 1 {
		t.Fatalf("Expected exactly 1 obstacle, got %d", len(g.state.Obstacles))
	}
	if g.state.Obstacles[0].Position != 800 {
		t.Errorf("Obstacle position = %v, expected 800", g.state.Obstacles[0].Position)
	}
	if want := 0.6 + 0.00001*16; math.Abs(g.state.Speed-want) > 1e-12 {
		t.Errorf("Speed = %v, expected %v", g.state.Speed, want)
	}
	if math.Abs(g.state.Score-0.16) > 1e-12 {
		t.Errorf("Score = %v, expected 0.16", g.state.Score)
	}
}

func TestCollisionWithDifferentColorEndsGame(t *testing.T) {
	g, rec := newRunningGame(t, 800)
	g.state.Score = 150.7
	g.state.Obstacles = []Obstacle{{ID: "a", Position: 30, Color: teal}}
	before := g.state

	res := g.Tick(0)

	if !res.Ended || !g.state.GameOver {
		t.Fatal("Overlapping obstacle of a different color should end the game")
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected game_over", g.Phase())
	}
	if len(rec.ended) != 1 || rec.ended[0] != 150 {
		t.Errorf("Recorder should get floor(score) once, got %v", rec.ended)
	}
	if !res.NewHighScore {
		t.Error("Beating a zero high score should report a new high score")
	}
	if g.state.Score != before.Score || g.state.Speed != before.Speed {
		t.Error("Game over should keep the pre-tick score and speed")
	}
	if !reflect.DeepEqual(g.state.Obstacles, before.Obstacles) {
		t.Error("Game over should keep the pre-tick obstacles")
	}
}

func TestCollisionWithSameColorIsSafe(t *testing.T) {
	g, rec := newRunningGame(t, 800)
	g.state.Obstacles = []Obstacle{{ID: "a", Position: 30, Color: coral}}

	res := g.Tick(0)

	if res.Ended || g.state.GameOver {
		t.Fatal("Same-color overlap should not end the game")
	}
	if len(rec.ended) != 0 {
		t.Error("Recorder should not be called while the game continues")
	}
}

func TestFlushEdgesDoNotCollide(t *testing.T) {
	tests := []struct {
		name     string
		position float64
	}{
		{"touching right edge of player", 50}, // obstacle 50..85, player 25..50
		{"touching left edge of player", -10}, // obstacle -10..25
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newRunningGame(t, 800)
			g.state.Obstacles = []Obstacle{{ID: "a", Position: tc.position, Color: teal}}

			if res := g.Tick(0); res.Ended {
				t.Errorf("Edge contact at %v should not collide", tc.position)
			}
		})
	}
}

func TestMultipleCollisionsEndOnce(t *testing.T) {
	g, rec := newRunningGame(t, 800)
	g.state.Obstacles = []Obstacle{
		{ID: "a", Position: 20, Color: teal},
		{ID: "b", Position: 40, Color: teal},
	}

	g.Tick(0)
	g.Tick(16 * time.Millisecond)

	if len(rec.ended) != 1 {
		t.Errorf("Game end should be reported exactly once, got %d", len(rec.ended))
	}
}

func TestOffscreenObstaclesAreCulled(t *testing.T) {
	g, _ := newRunningGame(t, 800)
	g.state.Speed = 1
	g.cfg.Physics.SpeedIncrement = 0
	g.state.Obstacles = []Obstacle{
		{ID: "gone", Position: -30, Color: teal},  // moves to -40, past -35
		{ID: "exact", Position: -25, Color: teal}, // moves to -35 exactly
		{ID: "kept", Position: -20, Color: teal},  // moves to -30
		{ID: "far", Position: 700, Color: teal},
	}

	g.Tick(10 * time.Millisecond)

	var ids []string
	for _, o := range g.state.Obstacles {
		ids = append(ids, o.ID)
		if o.Position < -g.cfg.Obstacles.Width {
			t.Errorf("Obstacle %s at %v is past the cull line", o.ID, o.Position)
		}
	}
	if len(ids) != 2 || ids[0] != "kept" || ids[1] != "far" {
		t.Errorf("Remaining obstacles = %v, expected [kept far]", ids)
	}
}

func TestSpawnWaitsForGap(t *testing.T) {
	g, _ := newRunningGame(t, 800)
	g.cfg.Physics.SpeedIncrement = 0

	g.state.Obstacles = []Obstacle{{ID: "a", Position: 600, Color: coral}}
	g.Tick(0)
	if len(g.state.Obstacles) != 1 {
		t.Fatalf("No spawn expected while newest obstacle is at 600, got %d", len(g.state.Obstacles))
	}

	g.state.Obstacles = []Obstacle{{ID: "a", Position: 499, Color: coral}}
	g.Tick(0)
	if len(g.state.Obstacles) != 2 {
		t.Fatalf("Expected a spawn once newest obstacle passed 500, got %d", len(g.state.Obstacles))
	}
	if last := g.state.Obstacles[1]; last.Position != 800 {
		t.Errorf("Spawned obstacle at %v, expected 800", last.Position)
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g, rec := newRunningGame(t, 800)
	g.state.Obstacles = []Obstacle{{ID: "a", Position: 30, Color: teal}}
	g.Tick(0)

	frozen := g.Snapshot()
	for i := 0; i < 50; i++ {
		g.Tick(16 * time.Millisecond)
	}

	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Errorf("Ticks after game over changed state:\nbefore %+v\nafter  %+v", frozen, g.Snapshot())
	}
	if len(rec.ended) != 1 {
		t.Errorf("Recorder called %d times, expected 1", len(rec.ended))
	}
}

func TestActivateTransitions(t *testing.T) {
	g, _ := newGame(t, 800)

	// Idle: starts without switching color
	if !g.Activate() {
		t.Fatal("Activate from idle should start the game")
	}
	if g.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", g.Phase())
	}
	if g.state.PlayerColor != coral {
		t.Error("Starting should not switch color")
	}

	// Running: switches color, twice returns to the original
	g.Activate()
	if g.state.PlayerColor != teal {
		t.Errorf("Activate while running should switch to %q, got %q", teal, g.state.PlayerColor)
	}
	g.Activate()
	if g.state.PlayerColor != coral {
		t.Errorf("Switching twice should return to %q, got %q", coral, g.state.PlayerColor)
	}

	// Game over: inert
	g.state.Obstacles = []Obstacle{{ID: "a", Position: 30, Color: teal}}
	g.Tick(0)
	color := g.state.PlayerColor
	if g.Activate() {
		t.Error("Activate after game over should do nothing")
	}
	if g.state.PlayerColor != color || !g.state.GameOver {
		t.Error("Activate after game over changed state")
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	g, _ := newRunningGame(t, 800)

	if g.Start() {
		t.Error("Start while running should be rejected")
	}
	if !g.state.Started {
		t.Error("Started must stay true while running")
	}
}

func TestRestartResetsGame(t *testing.T) {
	g, _ := newRunningGame(t, 800)

	if g.Restart() {
		t.Error("Restart while running should be rejected")
	}

	for i := 0; i < 20; i++ {
		g.Tick(16 * time.Millisecond)
	}
	g.Activate()
	g.state.Obstacles = append(g.state.Obstacles, Obstacle{ID: "x", Position: 30, Color: coral})
	g.Tick(0)
	if !g.state.GameOver {
		t.Fatal("Setup: expected game over")
	}

	if !g.Restart() {
		t.Fatal("Restart after game over should succeed")
	}

	if g.state.Score != 0 {
		t.Errorf("Score = %v, expected 0", g.state.Score)
	}
	if g.state.Speed != 0.6 {
		t.Errorf("Speed = %v, expected initial 0.6", g.state.Speed)
	}
	if g.state.GameOver || g.state.Started {
		t.Error("Restart should clear GameOver and Started")
	}
	if g.state.PlayerColor != coral {
		t.Errorf("Restart should restore the first palette color, got %q", g.state.PlayerColor)
	}
	if len(g.state.Obstacles) != 1 || g.state.Obstacles[0].Position != 800 {
		t.Errorf("Restart should seed one obstacle at 800, got %+v", g.state.Obstacles)
	}
	if g.newHighScore {
		t.Error("Restart should clear the new high score banner")
	}
}

func TestNegativeDeltaIsClamped(t *testing.T) {
	g, _ := newRunningGame(t, 800)
	g.state.Obstacles = []Obstacle{{ID: "a", Position: 600, Color: coral}}

	g.Tick(-time.Second)

	if g.state.Speed != 0.6 {
		t.Errorf("Negative dt changed speed to %v", g.state.Speed)
	}
	if g.state.Score != 0 {
		t.Errorf("Negative dt changed score to %v", g.state.Score)
	}
	if g.state.Obstacles[0].Position != 600 {
		t.Errorf("Negative dt moved obstacle to %v", g.state.Obstacles[0].Position)
	}
}

func TestResizeKeepsGameFields(t *testing.T) {
	g, _ := newRunningGame(t, 800)
	g.Tick(16 * time.Millisecond)
	before := g.state

	g.Resize(400, 300)

	if !reflect.DeepEqual(before, g.state) {
		t.Error("Resize should not change game fields")
	}
	if g.width != 400 {
		t.Errorf("width = %d, expected 400", g.width)
	}

	// New obstacles use the new width
	g.state.Obstacles = nil
	g.Tick(0)
	if g.state.Obstacles[0].Position != 400 {
		t.Errorf("Spawn after resize at %v, expected 400", g.state.Obstacles[0].Position)
	}
}

// TestLongRunInvariants plays a long game with variable frame times and an
// autopilot that matches the color of the next obstacle before it arrives.
func TestLongRunInvariants(t *testing.T) {
	g, rec := newRunningGame(t, 800)
	rng := rand.New(rand.NewSource(7))
	cullLine := -g.cfg.Obstacles.Width

	prevSpeed := g.state.Speed
	prevScore := g.state.Score

	for i := 0; i < 3000; i++ {
		for _, o := range g.state.Obstacles {
			if o.Position < 90 && o.Position+35 > 25 {
				if o.Color != g.state.PlayerColor {
					g.Activate()
				}
				break
			}
		}

		dt := time.Duration(8+rng.Intn(12)) * time.Millisecond
		g.Tick(dt)

		if g.state.Speed < prevSpeed {
			t.Fatalf("tick %d: speed decreased %v -> %v", i, prevSpeed, g.state.Speed)
		}
		if g.state.Score < prevScore {
			t.Fatalf("tick %d: score decreased %v -> %v", i, prevScore, g.state.Score)
		}
		for _, o := range g.state.Obstacles {
			if o.Position < cullLine {
				t.Fatalf("tick %d: obstacle %s at %v past cull line", i, o.ID, o.Position)
			}
		}
		prevSpeed, prevScore = g.state.Speed, g.state.Score
	}

	if g.state.GameOver {
		t.Errorf("Autopilot should survive, game ended with score %v", rec.ended)
	}
	if g.State().Score <= 0 {
		t.Error("Score should have accrued")
	}
}

func TestGameWithoutRecorder(t *testing.T) {
	g := New(browserConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Seed: 1})
	g.Start()
	g.state.Obstacles = []Obstacle{{ID: "a", Position: 30, Color: teal}}

	res := g.Tick(0)

	if !res.Ended {
		t.Error("Game should still end without a recorder")
	}
	if res.NewHighScore || g.State().HighScore != 0 {
		t.Error("No recorder means no high score")
	}
}

func TestPlayWithoutReset(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	g := New(cfg, nil)

	snap := g.Snapshot()
	if snap.Phase != PhaseIdle {
		t.Errorf("Phase = %v, expected idle", snap.Phase)
	}
	if snap.Speed != cfg.Physics.InitialSpeed {
		t.Errorf("Speed = %v, expected %v", snap.Speed, cfg.Physics.InitialSpeed)
	}
	if snap.PlayerColor != core.DefaultPalette()[0] {
		t.Errorf("PlayerColor = %q, expected %q", snap.PlayerColor, core.DefaultPalette()[0])
	}

	if !g.Start() {
		t.Fatal("Start() on a new game should succeed")
	}
	res := g.Tick(16 * time.Millisecond)

	if res.Ended || g.Phase() != PhaseRunning {
		t.Errorf("Game should keep running, phase = %v", g.Phase())
	}
	if n := len(g.Snapshot().Obstacles); n != 1 {
		t.Errorf("Obstacles = %d, expected 1", n)
	}
}

func TestRenderRunning(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	g := New(cfg, &fakeRecorder{high: 12})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.Start()
	g.state.Obstacles = []Obstacle{{ID: "a", Position: 40.6, Color: teal}}
	g.state.Score = 7.9

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	top := hudRows
	for x := 40; x < 43; x++ {
		cell := screen.GetCell(x, top)
		if cell.Rune != ObstacleChar || cell.Color != teal {
			t.Errorf("Expected obstacle cell at (%d, %d), got %+v", x, top, cell)
		}
	}

	// Play area is 20 rows; a 2-wide player is 1 row tall, centered
	player := screen.GetCell(3, top+9)
	if player.Rune != PlayerChar || player.Color != coral {
		t.Errorf("Expected player cell at (3, %d), got %+v", top+9, player)
	}

	if hud := rowText(screen, 0); !strings.Contains(hud, "Score: 7") || !strings.Contains(hud, "High Score: 12") {
		t.Errorf("HUD row = %q", hud)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), &fakeRecorder{})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screenText(screen), "Welcome to Color Runner!") {
		t.Error("Idle screen should show the welcome overlay")
	}

	g.Start()
	g.state.Score = 3
	g.state.Obstacles = []Obstacle{{ID: "a", Position: 3, Color: teal}}
	g.Tick(0)
	g.Render(screen)

	out := screenText(screen)
	if !strings.Contains(out, "Game Over!") || !strings.Contains(out, "Final Score: 3") {
		t.Error("Game over screen should show the final score")
	}
	if !strings.Contains(out, "New High Score!") {
		t.Error("Beating the high score should show the banner")
	}
}
