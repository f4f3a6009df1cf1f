// Package console runs 2048 as a line-oriented text game on any reader/writer pair.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/logging"
	"github.com/vovakirdan/term2048/internal/storage"
)

// Messages shown to the player.
const (
	msgInvalidKey   = "Invalid key. Use W/A/S/D, R, or Q."
	msgRejectedMove = "This move cannot change the board. Try something else!"
	msgGoodbye      = "Thanks for playing!"
	msgYesNo        = "Please enter 'y' or 'n'!"
)

// keyDirections maps console keys to move directions.
var keyDirections = map[string]t2048.Direction{
	"w": t2048.DirUp,
	"a": t2048.DirLeft,
	"s": t2048.DirDown,
	"d": t2048.DirRight,
}

// Console drives a game from line input.
type Console struct {
	game      *t2048.Game
	in        *bufio.Scanner
	out       io.Writer
	recorder  storage.Recorder
	logger    *log.Logger
	sessionID string
}

// New creates a console session. recorder may be nil.
func New(ctx context.Context, game *t2048.Game, in io.Reader, out io.Writer, recorder storage.Recorder) *Console {
	return &Console{
		game:      game,
		in:        bufio.NewScanner(in),
		out:       out,
		recorder:  recorder,
		logger:    logging.FromContext(ctx),
		sessionID: storage.NewSessionID(),
	}
}

// Run is shorthand for New(...).Run(ctx).
func Run(ctx context.Context, game *t2048.Game, in io.Reader, out io.Writer, recorder storage.Recorder) error {
	return New(ctx, game, in, out, recorder).Run(ctx)
}

// Run plays until the user quits, declines a replay, input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.println("~~~ 2048 ~~~")
	c.println("Use W (up), A (left), S (down), D (right) to move; R to restart; Q to quit.")
	c.println("")
	c.logger.Info("game started", "session", c.sessionID, "size", c.game.Options().Size, "target", c.game.Options().Target)

	for {
		if err := ctx.Err(); err != nil {
			c.record()
			return err
		}

		c.printBoard()

		key, ok := c.prompt("Move (W/A/S/D, R to restart, Q to quit): ")
		if !ok {
			c.record()
			return c.in.Err()
		}

		dir, isMove := parseMove(key)
		switch {
		case isMove:
		case key == "r":
			c.record()
			c.println("Restarting...")
			c.restart()
			continue
		case key == "q":
			c.record()
			c.println(msgGoodbye)
			return nil
		default:
			c.println(msgInvalidKey)
			c.println("")
			continue
		}

		out := c.game.Move(dir)
		if !out.Changed {
			c.logger.Debug("move rejected", "dir", dir)
			c.println(msgRejectedMove)
			c.println("")
			continue
		}
		c.logger.Debug("move", "dir", dir, "gained", out.Gained, "score", c.game.Score())

		if !c.game.Finished() {
			continue
		}

		c.printBoard()
		if c.game.Status() == t2048.StatusWon {
			c.printf("You won! Final score: %d\n", c.game.Score())
		} else {
			c.printf("Game over! Final score: %d\n", c.game.Score())
		}
		c.record()

		again, err := c.playAgain()
		if err != nil || !again {
			return err
		}
		c.restart()
	}
}

// playAgain asks until it gets y or n. End of input counts as no.
func (c *Console) playAgain() (bool, error) {
	for {
		answer, ok := c.prompt("Play again? (y/n): ")
		if !ok {
			return false, c.in.Err()
		}
		switch answer {
		case "y":
			return true, nil
		case "n":
			c.println(msgGoodbye)
			return false, nil
		default:
			c.println(msgYesNo)
		}
	}
}

func (c *Console) restart() {
	c.game.Reset()
	c.sessionID = storage.NewSessionID()
	c.println("New Game")
	c.println("")
	c.logger.Info("game restarted", "session", c.sessionID)
}

// record saves the current game once it has at least one committed move.
func (c *Console) record() {
	snap := c.game.Snapshot()
	if snap.Moves == 0 {
		return
	}

	result := storage.ResultOf(c.sessionID, snap)
	c.logger.Info("game finished", "session", c.sessionID, "outcome", result.Outcome, "score", result.Score, "max_tile", result.MaxTile)

	if c.recorder == nil {
		return
	}
	if _, err := c.recorder.SaveResult(result); err != nil {
		c.logger.Warn("could not save result", "error", err)
	}
}

// prompt writes text and returns the next trimmed, lower-cased input line.
func (c *Console) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		c.println("")
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(c.in.Text())), true
}

func (c *Console) printBoard() {
	c.println(c.game.Board().String())
	c.printf("Score: %d\n\n", c.game.Score())
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// parseMove accepts WASD keys and full direction names.
func parseMove(key string) (t2048.Direction, bool) {
	if dir, ok := keyDirections[key]; ok {
		return dir, true
	}
	return t2048.ParseDirection(key)
}
