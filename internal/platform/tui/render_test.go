package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/storage"
)

func TestThemeTile(t *testing.T) {
	theme := DefaultTheme()

	if theme.Tile(0).GetBackground() != theme.EmptyTile.GetBackground() {
		t.Error("zero should use the empty tile style")
	}
	for value := range tileColors {
		if theme.Tile(value).GetBackground() != theme.Tiles[value].GetBackground() {
			t.Errorf("tile %d should use its palette colour", value)
		}
	}
	if theme.Tile(4096).GetBackground() != theme.HighTile.GetBackground() {
		t.Error("tiles above 2048 should use the high tile style")
	}
}

func TestTileWidth(t *testing.T) {
	tests := []struct {
		board t2048.Board
		want  int
	}{
		{t2048.Board{{0, 0}, {0, 0}}, minTileWidth},
		{t2048.Board{{2048, 0}, {0, 0}}, minTileWidth},
		{t2048.Board{{131072, 0}, {0, 0}}, 8},
	}

	for _, tt := range tests {
		if got := tileWidth(tt.board); got != tt.want {
			t.Errorf("tileWidth(max %d) = %d, want %d", tt.board.MaxTile(), got, tt.want)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	b := t2048.Board{
		{2, 0, 0},
		{0, 128, 0},
		{0, 0, 4096},
	}

	out := RenderBoard(b, DefaultTheme())

	for _, want := range []string{"2", "128", "4096"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q:\n%s", want, out)
		}
	}
	// Three tile rows of height 3, two separators and vertical padding.
	if lines := strings.Count(out, "\n") + 1; lines != 3*tileHeight+2+2 {
		t.Errorf("board has %d lines, want %d", lines, 3*tileHeight+4)
	}
}

func TestRenderStatus(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		status t2048.Status
		notice string
		want   string
	}{
		{t2048.StatusWon, "", "You won! Final score: 10"},
		{t2048.StatusOver, "", "Game over! Final score: 10"},
		{t2048.StatusOver, "", "r: play again"},
		{t2048.StatusActive, msgMoveNotPossible, msgMoveNotPossible},
	}

	for _, tt := range tests {
		if got := renderStatus(tt.status, 10, tt.notice, theme); !strings.Contains(got, tt.want) {
			t.Errorf("renderStatus(%s, %q) = %q, want it to contain %q", tt.status, tt.notice, got, tt.want)
		}
	}

	if got := renderStatus(t2048.StatusActive, 10, "", theme); strings.TrimSpace(got) != "" {
		t.Errorf("active status without notice should be blank, got %q", got)
	}
}

func TestRenderScores(t *testing.T) {
	theme := DefaultTheme()

	empty := RenderScores(4, nil, 0, theme)
	if !strings.Contains(empty, "HIGH SCORES - 4x4") || !strings.Contains(empty, "No scores recorded yet") {
		t.Errorf("empty scores view:\n%s", empty)
	}

	results := []storage.Result{
		{Score: 5120, MaxTile: 512, Moves: 400, Outcome: storage.OutcomeOver, CreatedAt: time.Date(2025, 1, 2, 15, 4, 0, 0, time.UTC)},
		{Score: 880, MaxTile: 64, Moves: 120, Outcome: storage.OutcomeQuit, CreatedAt: time.Date(2025, 1, 3, 9, 30, 0, 0, time.UTC)},
	}
	out := RenderScores(4, results, 5120, theme)

	for _, want := range []string{"Rank", "#1", "#2", "5120", "880", "over", "quit", "Jan 02 15:04", "Best"} {
		if !strings.Contains(out, want) {
			t.Errorf("scores view missing %q:\n%s", want, out)
		}
	}
}

func TestKeyMapDirection(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key  string
		want t2048.Direction
		ok   bool
	}{
		{"up", t2048.DirUp, true},
		{"w", t2048.DirUp, true},
		{"k", t2048.DirUp, true},
		{"down", t2048.DirDown, true},
		{"s", t2048.DirDown, true},
		{"j", t2048.DirDown, true},
		{"left", t2048.DirLeft, true},
		{"a", t2048.DirLeft, true},
		{"h", t2048.DirLeft, true},
		{"right", t2048.DirRight, true},
		{"d", t2048.DirRight, true},
		{"l", t2048.DirRight, true},
		{"x", 0, false},
		{"r", 0, false},
	}

	for _, tt := range tests {
		got, ok := keys.Direction(keyMsg(tt.key))
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Direction(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
