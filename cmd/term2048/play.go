package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/platform/console"
	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the full-screen terminal UI",
	Long: `Start a game in the full-screen terminal UI.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  R                 - Restart
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

When stdout is not a terminal the line-based console game runs instead.

Examples:
  term2048 play
  term2048 play --size 3 --target 256
  term2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play with line input on stdin/stdout",
	Long: `Start a line-based game. Type a key and press Enter.

Controls:
  W/A/S/D  - Up/Left/Down/Right
  R        - Restart
  Q        - Quit

Examples:
  term2048 console
  term2048 console --seed 42`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runConsole(cmd, args)
	}

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Logs would corrupt the alternate screen, so only a file is allowed.
	logger, closeLog, err := setupLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	logger.Debug("starting terminal UI", "config", source, "width", width, "height", height)

	game, err := newGame(cfg, logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx := commandContext(cmd, logger)
	if err := tui.Run(ctx, game, recorderFor(store), bestScore(store, cfg.Game.Size, logger)); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	return nil
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("starting console", "config", source)

	game, err := newGame(cfg, logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx := commandContext(cmd, logger)
	return console.Run(ctx, game, os.Stdin, os.Stdout, recorderFor(store))
}
