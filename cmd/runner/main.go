// runner is Color Runner, a one-button color matching game for the terminal.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show the high score and recent games
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.color-runner/runner.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - Set log level (debug, info, warn, error)
//
// Every flag can also be set through a RUNNER_ environment variable,
// e.g. RUNNER_FPS=30 or RUNNER_LOG_LEVEL=debug.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Color Runner - Match your color to pass the obstacles",
	Long: `Color Runner is a terminal game with a single button. Your square
switches between two colors and obstacles scroll toward it. You can only
pass through an obstacle wearing its color, and the pace keeps rising.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the high score and recent games

Examples:
  runner play
  runner play --difficulty hard
  runner serve --ssh :2222
  runner scores`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindEnv(cmd.Flags())
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second) (env: RUNNER_FPS)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed, 0 = random based on time (env: RUNNER_SEED)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env: RUNNER_DB)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (env: RUNNER_LOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env: RUNNER_LOG_LEVEL)")

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
