package storage

import "github.com/vovakirdan/term2048/internal/games/t2048"

// Recorder persists finished games. *Store implements it.
type Recorder interface {
	SaveResult(r Result) (int64, error)
}

// OutcomeOf maps a session status to the outcome recorded for it.
// An active game that is being abandoned counts as quit.
func OutcomeOf(status t2048.Status) string {
	switch status {
	case t2048.StatusWon:
		return OutcomeWon
	case t2048.StatusOver:
		return OutcomeOver
	default:
		return OutcomeQuit
	}
}

// ResultOf builds the record for a game snapshot.
func ResultOf(sessionID string, snap t2048.Snapshot) Result {
	return Result{
		SessionID: sessionID,
		BoardSize: snap.Board.Size(),
		Target:    snap.Target,
		Score:     snap.Score,
		MaxTile:   snap.MaxTile,
		Moves:     snap.Moves,
		Outcome:   OutcomeOf(snap.Status),
	}
}
