package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-runner/internal/core"
	"github.com/vovakirdan/color-runner/internal/game"
	"github.com/vovakirdan/color-runner/internal/storage"
)

// Model is the Bubble Tea model for one game session. It owns the game
// for the lifetime of the session; every mutation happens inside Update.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	loop     *Loop
	keys     KeyMap
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil; finished games are then not added to the history.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		loop:   NewLoop(cfg.TickRate),
		keys:   DefaultKeyMap(),
		store:  store,
		logger: logger,
		config: cfg,
	}
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "width", m.config.ScreenW, "height", m.config.ScreenH, "seed", m.config.Seed)
	return m.loop.Start()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Nothing touches the game after teardown
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleAction applies one input action to the game.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit

	case core.ActionActivate:
		m.game.Activate()

	case core.ActionStart:
		m.game.Start()

	case core.ActionRestart:
		if m.game.Restart() {
			// Re-arm so the pause on the game over screen does not
			// show up as one huge frame.
			m.loop.Stop()
			return m, m.loop.Start()
		}
	}

	return m, nil
}

// handleResize updates play-area geometry. Game fields are untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame runs one simulation tick with the measured elapsed time.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	dt, ok, next := m.loop.Frame(msg)
	if !ok {
		return m, next
	}

	result := m.game.Tick(dt)
	if result.Ended {
		m.recordGame(result)
	}

	return m, next
}

// recordGame adds a finished game to the history.
func (m Model) recordGame(result game.StepResult) {
	m.logger.Info("game over",
		"score", result.State.Score,
		"high_score", result.State.HighScore,
		"new_high_score", result.NewHighScore,
	)

	if m.store == nil || result.State.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), result.State.Score); err != nil {
		m.logger.Warn("could not save game to history", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a local Bubble Tea program for the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks act as taps
	)

	_, err := p.Run()
	model.loop.Stop()
	return err
}
