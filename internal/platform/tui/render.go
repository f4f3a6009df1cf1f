package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/storage"
)

// tileWidth returns a cell width wide enough for the largest tile on b.
func tileWidth(b t2048.Board) int {
	w := len(strconv.Itoa(b.MaxTile())) + tilePaddingCols
	return max(w, minTileWidth)
}

// RenderBoard draws the grid as coloured tiles.
func RenderBoard(b t2048.Board, theme Theme) string {
	width := tileWidth(b)
	gap := lipgloss.NewStyle().
		Background(theme.Board.GetBackground()).
		Width(1).
		Height(tileHeight).
		Render("")
	rows := make([]string, 0, 2*len(b))

	for i, row := range b {
		cells := make([]string, 0, 2*len(row))
		for j, v := range row {
			if j > 0 {
				cells = append(cells, gap)
			}
			label := ""
			if v != 0 {
				label = strconv.Itoa(v)
			}
			cells = append(cells, theme.Tile(v).
				Width(width).
				Height(tileHeight).
				Align(lipgloss.Center, lipgloss.Center).
				Render(label))
		}
		if i > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return theme.Board.Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHUD draws the score line.
func renderHUD(score, best int, theme Theme) string {
	return fmt.Sprintf("%s %s    %s %s",
		theme.HUDLabel.Render("Score"),
		theme.HUDValue.Render(strconv.Itoa(score)),
		theme.HUDLabel.Render("Best"),
		theme.HUDValue.Render(strconv.Itoa(best)),
	)
}

// renderStatus draws the line under the board for the current state.
func renderStatus(status t2048.Status, score int, notice string, theme Theme) string {
	switch status {
	case t2048.StatusWon:
		return theme.Won.Render(fmt.Sprintf("You won! Final score: %d", score)) +
			"\n" + theme.Help.Render("r: play again · q: quit")
	case t2048.StatusOver:
		return theme.Over.Render(fmt.Sprintf("Game over! Final score: %d", score)) +
			"\n" + theme.Help.Render("r: play again · q: quit")
	}
	if notice != "" {
		return theme.Notice.Render(notice) + "\n"
	}
	return "\n"
}

// RenderScores draws the leaderboard for one board size.
func RenderScores(size int, results []storage.Result, best int, theme Theme) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("HIGH SCORES - %dx%d", size, size)))
	b.WriteString("\n\n")

	if len(results) == 0 {
		b.WriteString(theme.Help.Italic(true).Render("No scores recorded yet. Play a game to set a high score!"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(scoresTable(results).View())
	b.WriteString("\n\n")
	b.WriteString(renderHUD(results[0].Score, best, theme))
	b.WriteString("\n")
	return b.String()
}

// scoresTable builds a non-interactive table of results.
func scoresTable(results []storage.Result) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Max", Width: 7},
		{Title: "Moves", Width: 7},
		{Title: "Outcome", Width: 8},
		{Title: "Date", Width: 14},
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.MaxTile),
			strconv.Itoa(r.Moves),
			r.Outcome,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Unfocused table: no row highlight.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	t.Blur()

	return t
}

// centerBlock places a rendered block in the middle of the window.
func centerBlock(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
