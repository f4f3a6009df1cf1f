// term2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	term2048 play      - Play in a full-screen terminal UI
//	term2048 console   - Play with line input (W/A/S/D + Enter)
//	term2048 scores    - Show high scores for the configured board size
//	term2048 config    - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible games (0 = time-based)
//	--db <path>          - Database path (default: ~/.term2048/scores.db)
//	--config <path>      - Config file (YAML, or TOML by .toml extension)
//	--size <n>           - Board dimension
//	--start-tiles <n>    - Tiles on a fresh board
//	--target <n>         - Winning tile value
//	--verbose            - Debug logging
//	--log-file <path>    - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/logging"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagSize       int
	flagStartTiles int
	flagTarget     int
	flagVerbose    bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles, merge equal neighbours and reach the target tile.

Available commands:
  play     - Full-screen terminal UI
  console  - Line-based text game
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  term2048 play
  term2048 play --size 5 --target 4096
  term2048 console --seed 42
  term2048 scores --size 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.term2048/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to config file (YAML or .toml)")
	pf.IntVar(&flagSize, "size", t2048.DefaultSize, "Board size N (NxN)")
	pf.IntVar(&flagStartTiles, "start-tiles", t2048.DefaultStartTiles, "Tiles placed on a fresh board")
	pf.IntVar(&flagTarget, "target", t2048.DefaultTarget, "Tile value that wins the game")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Game.Size = flagSize
	}
	if flags.Changed("start-tiles") {
		cfg.Game.StartTiles = flagStartTiles
	}
	if flags.Changed("target") {
		cfg.Game.Target = flagTarget
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// setupLogger builds the logger for a command. Logs go to --log-file when
// set, else to fallback. The returned close func is never nil.
func setupLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level := logging.Level(flagVerbose)
	if flagLogFile == "" {
		return logging.New(fallback, level), func() {}, nil
	}

	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level), func() { f.Close() }, nil
}

// newGame creates a session from cfg seeded by --seed.
func newGame(cfg config.Config, logger *log.Logger) (*t2048.Game, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("seeding game", "seed", seed)
	return t2048.New(cfg.Options(), t2048.NewSource(seed))
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// recorderFor avoids handing a typed nil to code that checks for a nil Recorder.
func recorderFor(store *storage.Store) storage.Recorder {
	if store == nil {
		return nil
	}
	return store
}

// bestScore returns the stored high score for size, or 0.
func bestScore(store *storage.Store, size int, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore(size)
	if err != nil {
		logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// commandContext attaches logger to the command context.
func commandContext(cmd *cobra.Command, logger *log.Logger) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logger)
}
