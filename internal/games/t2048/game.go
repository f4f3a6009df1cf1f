// Package t2048 implements the 2048 sliding-tile puzzle: the board, the
// move-resolution engine, tile spawning, win/terminal detection and the
// Game session that front-ends drive turn by turn.
package t2048

import "fmt"

// Status is the state of a game session.
type Status string

const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusOver   Status = "over"
)

// Options configures a game session.
type Options struct {
	Size       int // Board dimension N
	StartTiles int // Tiles placed on a fresh board, clamped to [0, N²]
	Target     int // Tile value that wins the game
}

// DefaultOptions returns the classic 4x4 game to 2048.
func DefaultOptions() Options {
	return Options{
		Size:       DefaultSize,
		StartTiles: DefaultStartTiles,
		Target:     DefaultTarget,
	}
}

// Outcome describes what a call to Game.Move did.
type Outcome struct {
	Direction Direction
	Changed   bool   // False means the move was rejected: no score, no spawn
	Gained    int    // Score added by this move
	Spawned   bool   // Whether a new tile was placed
	Status    Status // Session status after the move
}

// Game holds one 2048 session: the board, the running score and the status.
// It is not safe for concurrent use.
type Game struct {
	opts   Options
	rng    Source
	board  Board
	score  int
	moves  int
	status Status
}

// New creates a game and deals its first board.
func New(opts Options, rng Source) (*Game, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, opts.Size)
	}
	if opts.Target <= 0 {
		opts.Target = DefaultTarget
	}
	opts.StartTiles = clamp(opts.StartTiles, 0, opts.Size*opts.Size)

	g := &Game{opts: opts, rng: rng}
	g.Reset()
	return g, nil
}

// Reset discards the current board and score and starts over.
func (g *Game) Reset() {
	// Size was validated in New, so NewBoard cannot fail here.
	board, _ := NewBoard(g.opts.Size, g.opts.StartTiles, g.rng)
	g.board = board
	g.score = 0
	g.moves = 0
	g.status = StatusActive
}

// Move resolves a move in dir and commits it if the board changed.
// Moves are ignored once the game is won or over.
func (g *Game) Move(dir Direction) Outcome {
	out := Outcome{Direction: dir, Status: g.status}
	if g.status != StatusActive {
		return out
	}

	res := Move(g.board, dir)
	if !res.Changed {
		return out
	}

	g.board = res.Board
	g.score += res.Score
	g.moves++
	out.Changed = true
	out.Gained = res.Score

	out.Spawned = SpawnTile(g.board, g.rng)

	switch {
	case HasWon(g.board, g.opts.Target):
		g.status = StatusWon
	case !HasMoves(g.board):
		g.status = StatusOver
	}
	out.Status = g.status
	return out
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// Score returns the running score.
func (g *Game) Score() int {
	return g.score
}

// Status returns the session status.
func (g *Game) Status() Status {
	return g.status
}

// Options returns the options the game was created with, after clamping.
func (g *Game) Options() Options {
	return g.opts
}

// Finished reports whether the session reached an absorbing state.
func (g *Game) Finished() bool {
	return g.status != StatusActive
}
