package t2048

import (
	"errors"
	"strings"
	"testing"
)

// scriptedSource returns the leading indices for Sample and replays choices
// for Choice, falling back to 0 once they run out.
type scriptedSource struct {
	choices []int
}

func (s *scriptedSource) Sample(n, k int) []int {
	out := make([]int, 0, k)
	for i := 0; i < k && i < n; i++ {
		out = append(out, i)
	}
	return out
}

func (s *scriptedSource) Choice(n int) int {
	if len(s.choices) == 0 {
		return 0
	}
	c := s.choices[0]
	s.choices = s.choices[1:]
	return c % n
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		opts := DefaultOptions()
		opts.Size = size
		if _, err := New(opts, &scriptedSource{}); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(size=%d) error = %v, want ErrInvalidSize", size, err)
		}
		if _, err := NewBoard(size, 2, &scriptedSource{}); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBoard(size=%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestNewBoardStartTiles(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		startTiles int
		wantTiles  int
	}{
		{"default", 4, 2, 2},
		{"none", 4, 0, 0},
		{"negative clamps to zero", 4, -3, 0},
		{"clamped to cell count", 2, 100, 4},
		{"single cell", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.size, tt.startTiles, NewSource(1))
			if err != nil {
				t.Fatalf("NewBoard() failed: %v", err)
			}
			if b.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", b.Size(), tt.size)
			}

			tiles := tt.size*tt.size - len(b.EmptyCells())
			if tiles != tt.wantTiles {
				t.Errorf("placed %d tiles, want %d", tiles, tt.wantTiles)
			}
			for _, row := range b {
				for _, v := range row {
					if v != 0 && v != 2 {
						t.Errorf("start tile has value %d, want 2", v)
					}
				}
			}
		})
	}
}

func TestDeterministicSpawn(t *testing.T) {
	// Same seed, same boards and spawns
	g1, err := New(DefaultOptions(), NewSource(12345))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g2, err := New(DefaultOptions(), NewSource(12345))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if !g1.Board().Equal(g2.Board()) {
		t.Fatalf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Board(), g2.Board())
	}

	for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft, DirUp} {
		g1.Move(dir)
		g2.Move(dir)
		if !g1.Board().Equal(g2.Board()) {
			t.Fatalf("boards diverged after %s:\n%v\nvs\n%v", dir, g1.Board(), g2.Board())
		}
	}
}

func TestRejectedMoveNoSpawn(t *testing.T) {
	g, err := New(DefaultOptions(), &scriptedSource{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.board = Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := g.Board()

	out := g.Move(DirLeft)

	if out.Changed || out.Spawned || out.Gained != 0 {
		t.Errorf("Move(left) = %+v, want rejected move", out)
	}
	if !g.Board().Equal(before) {
		t.Errorf("rejected move changed the board:\n%v", g.Board())
	}
	if g.Score() != 0 || g.Snapshot().Moves != 0 {
		t.Errorf("rejected move counted: score=%d moves=%d", g.Score(), g.Snapshot().Moves)
	}
}

func TestCommittedMoveSpawnsOnce(t *testing.T) {
	g, err := New(DefaultOptions(), &scriptedSource{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.board = Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	out := g.Move(DirLeft)

	if !out.Changed || !out.Spawned || out.Gained != 4 {
		t.Fatalf("Move(left) = %+v, want changed move gaining 4", out)
	}

	// The scripted source picks the first empty cell.
	expected := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if !g.Board().Equal(expected) {
		t.Errorf("board after move:\n%v\nwant\n%v", g.Board(), expected)
	}
	if g.Score() != 4 {
		t.Errorf("Score() = %d, want 4", g.Score())
	}
	if g.Status() != StatusActive {
		t.Errorf("Status() = %s, want active", g.Status())
	}
}

func TestWinIsAbsorbing(t *testing.T) {
	opts := DefaultOptions()
	opts.Target = 8

	g, err := New(opts, &scriptedSource{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.board = Board{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
	}

	out := g.Move(DirLeft)
	if out.Status != StatusWon || !g.Finished() {
		t.Fatalf("Move(left) status = %s, want won", out.Status)
	}

	board := g.Board()
	score := g.Score()
	if out := g.Move(DirRight); out.Changed {
		t.Error("moves after a win should be ignored")
	}
	if !g.Board().Equal(board) || g.Score() != score {
		t.Error("board or score changed after a win")
	}
}

func TestGameOverIsDetected(t *testing.T) {
	opts := Options{Size: 2, StartTiles: 0, Target: DefaultTarget}

	g, err := New(opts, &scriptedSource{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.board = Board{
		{2, 4},
		{0, 8},
	}

	out := g.Move(DirLeft)

	// [[2,4],[8,0]] plus a spawned 2 leaves no merges.
	if !out.Changed || !out.Spawned {
		t.Fatalf("Move(left) = %+v, want changed move with spawn", out)
	}
	if out.Status != StatusOver {
		t.Errorf("status = %s, want over\n%v", out.Status, g.Board())
	}
	if g.Move(DirUp).Changed {
		t.Error("moves after game over should be ignored")
	}
}

func TestReset(t *testing.T) {
	g, err := New(DefaultOptions(), NewSource(42))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.board = Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g.Move(DirLeft)
	g.status = StatusOver

	g.Reset()

	snap := g.Snapshot()
	if snap.Score != 0 || snap.Moves != 0 || snap.Status != StatusActive {
		t.Errorf("after Reset: %+v", snap)
	}
	if tiles := 16 - len(snap.Board.EmptyCells()); tiles != DefaultStartTiles {
		t.Errorf("after Reset: %d tiles, want %d", tiles, DefaultStartTiles)
	}
}

func TestSnapshot(t *testing.T) {
	g, err := New(DefaultOptions(), NewSource(42))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	snap := g.Snapshot()

	if snap.Target != DefaultTarget {
		t.Errorf("Snapshot Target = %d, want %d", snap.Target, DefaultTarget)
	}
	if snap.MaxTile != 2 {
		t.Errorf("Snapshot MaxTile = %d, want 2", snap.MaxTile)
	}
	if snap.Status != StatusActive {
		t.Errorf("Snapshot State = %s, want active", snap.Status)
	}

	// Snapshot boards are copies.
	snap.Board[0][0] = 4096
	if g.Board().MaxTile() == 4096 {
		t.Error("Snapshot board aliases the game board")
	}
}

func TestBoardString(t *testing.T) {
	b := Board{
		{2, 0},
		{0, 2048},
	}

	expected := strings.Join([]string{
		"+------+------+",
		"|  2   |      |",
		"+------+------+",
		"|      | 2048 |",
		"+------+------+",
	}, "\n")

	if got := b.String(); got != expected {
		t.Errorf("String():\n%s\nwant\n%s", got, expected)
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := board.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Cell{Row: 0, Col: 1}) {
		t.Errorf("first empty cell = %+v, want row-major order", cells[0])
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := board.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}
