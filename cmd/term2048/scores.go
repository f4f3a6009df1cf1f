package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

const scoresLimit = 10

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores for the configured board size",
	Long: `Display the top 10 results for the configured board size.

Examples:
  term2048 scores
  term2048 scores --size 5
  term2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded results for the board size")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	size := cfg.Game.Size

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(size); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared %dx%d results.\n", size, size)
		return nil
	}

	results, err := store.TopResults(size, scoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	best, err := store.HighScore(size)
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}

	fmt.Fprint(os.Stdout, tui.RenderScores(size, results, best, tui.DefaultTheme()))
	return nil
}
