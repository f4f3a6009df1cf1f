package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Default game parameters.
const (
	DefaultSize       = 4
	DefaultStartTiles = 2
	DefaultTarget     = 2048
)

// spawnValue is the value of every tile placed by the spawner.
const spawnValue = 2

// ErrInvalidSize is returned when a board is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("t2048: board size must be positive")

// Board is an N×N grid of tile values. Zero marks an empty cell.
// Rows are indexed first: b[row][col].
type Board [][]int

// Cell is a (row, column) coordinate on the board.
type Cell struct {
	Row int
	Col int
}

// NewBoard returns a size×size board with startTiles tiles of value 2
// placed at distinct positions chosen by rng.
// startTiles is clamped to [0, size*size].
func NewBoard(size, startTiles int, rng Source) (Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	b := emptyBoard(size)

	n := clamp(startTiles, 0, size*size)
	if n == 0 {
		return b, nil
	}

	for _, pos := range rng.Sample(size*size, n) {
		b[pos/size][pos%size] = spawnValue
	}
	return b, nil
}

// emptyBoard allocates a zeroed size×size board.
func emptyBoard(size int) Board {
	b := make(Board, size)
	for i := range b {
		b[i] = make([]int, size)
	}
	return b
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for i, row := range b {
		c[i] = append([]int(nil), row...)
	}
	return c
}

// Equal reports whether two boards have the same dimension and cell values.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if len(b[i]) != len(other[i]) {
			return false
		}
		for j := range b[i] {
			if b[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for r, row := range b {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

const textCellWidth = 6

// String renders the board as a fixed-width ASCII grid:
//
//	+------+------+
//	|  2   |      |
//	+------+------+
func (b Board) String() string {
	sep := "+" + strings.Repeat(strings.Repeat("-", textCellWidth)+"+", b.Size())

	var sb strings.Builder
	sb.WriteString(sep)
	for _, row := range b {
		sb.WriteString("\n|")
		for _, v := range row {
			if v == 0 {
				sb.WriteString(strings.Repeat(" ", textCellWidth))
			} else {
				sb.WriteString(centerCell(strconv.Itoa(v)))
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(sep)
	}
	return sb.String()
}

// centerCell centers s in a text cell, with any odd padding going to the right.
func centerCell(s string) string {
	pad := textCellWidth - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
