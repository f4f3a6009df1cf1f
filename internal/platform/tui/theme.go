package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Tile palette of the classic 2048 look.
var tileColors = map[int]string{
	2:    "#eee4da",
	4:    "#ede0c8",
	8:    "#f2b179",
	16:   "#f59563",
	32:   "#f67c5f",
	64:   "#f65e3b",
	128:  "#edcf72",
	256:  "#edcc61",
	512:  "#edc850",
	1024: "#edc53f",
	2048: "#edc22e",
}

const (
	colorEmpty      = "#cdc1b4"
	colorBoard      = "#bbada0"
	colorDarkText   = "#776e65"
	colorLightText  = "#f9f6f2"
	colorHighTile   = "#3c3a32"
	colorDim        = "245"
	colorHighlight  = "229"
	colorWarning    = "208"
	colorSuccess    = "42"
	colorDanger     = "196"
	tileHeight      = 3
	minTileWidth    = 7
	tilePaddingCols = 2
)

// Theme holds the lipgloss styles used by the game view.
type Theme struct {
	Tiles     map[int]lipgloss.Style
	HighTile  lipgloss.Style // Tiles above 2048
	EmptyTile lipgloss.Style
	Board     lipgloss.Style

	Title    lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
	Notice   lipgloss.Style
	Won      lipgloss.Style
	Over     lipgloss.Style
	Help     lipgloss.Style
}

// DefaultTheme returns the classic beige-and-orange theme.
func DefaultTheme() Theme {
	tiles := make(map[int]lipgloss.Style, len(tileColors))
	for value, bg := range tileColors {
		fg := colorLightText
		if value <= 4 {
			fg = colorDarkText
		}
		tiles[value] = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fg)).
			Background(lipgloss.Color(bg))
	}

	return Theme{
		Tiles: tiles,
		HighTile: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorLightText)).
			Background(lipgloss.Color(colorHighTile)),
		EmptyTile: lipgloss.NewStyle().Background(lipgloss.Color(colorEmpty)),
		Board: lipgloss.NewStyle().
			Background(lipgloss.Color(colorBoard)).
			Padding(0, 1),

		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorHighlight)),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim)),
		HUDValue: lipgloss.NewStyle().Bold(true),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarning)),
		Won:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorSuccess)),
		Over:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorDanger)),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Tile returns the style for a tile value. Zero is the empty cell.
func (t Theme) Tile(value int) lipgloss.Style {
	if value == 0 {
		return t.EmptyTile
	}
	if s, ok := t.Tiles[value]; ok {
		return s
	}
	return t.HighTile
}
