package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-runner/internal/game"
	"github.com/vovakirdan/color-runner/internal/score"
	"github.com/vovakirdan/color-runner/internal/storage"
)

const historyLimit = 10

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and recent games",
	Long: `Display the high score and the top 10 finished games.

Examples:
  runner scores
  runner scores --db ./runner.db
  runner scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the high score and the game history (env: RUNNER_RESET)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	tracker := score.Load(store, nil)
	out := cmd.OutOrStdout()

	if flagReset {
		if err := tracker.Reset(); err != nil {
			return fmt.Errorf("clearing high score: %w", err)
		}
		if err := store.ClearScores(game.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "High score and game history cleared.")
		return nil
	}

	entries, err := store.TopScores(game.GameID, historyLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	printScores(out, tracker.HighScore(), entries)
	return nil
}

// printScores writes the score table.
func printScores(w io.Writer, highScore int, entries []storage.ScoreEntry) {
	fmt.Fprintln(w, "High Scores - Color Runner")
	fmt.Fprintln(w)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
	} else {
		// Print header
		fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

		for i, entry := range entries {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", highScore)
	if highScore == 0 && len(entries) == 0 {
		fmt.Fprintln(w, "Play 'runner play' to set the first high score!")
	}
}
