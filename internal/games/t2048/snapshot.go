package t2048

// Snapshot captures the game state for rendering and result recording.
type Snapshot struct {
	Board   Board // Copy, safe to keep
	Score   int
	Moves   int // Committed moves
	MaxTile int
	Target  int
	Status  Status
}

// Snapshot returns a read-only view of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   g.board.Clone(),
		Score:   g.score,
		Moves:   g.moves,
		MaxTile: g.board.MaxTile(),
		Target:  g.opts.Target,
		Status:  g.status,
	}
}
