package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/color-runner/internal/config"
	"github.com/vovakirdan/color-runner/internal/core"
	"github.com/vovakirdan/color-runner/internal/game"
	"github.com/vovakirdan/color-runner/internal/platform/tui"
	"github.com/vovakirdan/color-runner/internal/score"
	"github.com/vovakirdan/color-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

const playLong = `Start a game of Color Runner in this terminal.

Controls:
%s
Difficulty options:
  easy   - Slower start, gentle speed ramp
  normal - Default tuning
  hard   - Faster start, steep speed ramp

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --log-file ./runner.log --log-level debug`

func init() {
	playCmd.Long = fmt.Sprintf(playLong, controlsHelp(tui.DefaultKeyMap().ShortHelp()))
	addTuningFlags(playCmd)
}

// controlsHelp formats key bindings as an indented two-column list.
func controlsHelp(bindings []key.Binding) string {
	var sb strings.Builder
	for _, b := range bindings {
		h := b.Help()
		fmt.Fprintf(&sb, "  %-12s - %s\n", h.Key, h.Desc)
	}
	return sb.String()
}

// addTuningFlags registers the game tuning flags shared by play and serve.
func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (env: RUNNER_CONFIG)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (env: RUNNER_DIFFICULTY)")
}

// loadRunnerConfig resolves the game tuning from --config and --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open database, high score will not persist", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var kv score.KV
	if store != nil {
		kv = store
		defer store.Close()
	}

	tracker := score.Load(kv, logger)
	g := game.New(runnerCfg, tracker)

	if err := tui.Run(g, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
