package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// MoveResult is the outcome of resolving one directional move.
type MoveResult struct {
	Board   Board // Resulting board, never aliased with the input
	Score   int   // Sum of merged tile values gained by this move
	Changed bool  // Whether Board differs from the input in any cell
}

// Compress slides all non-zero values to the left, preserving their order,
// and pads the rest of the row with zeros. The input is not modified.
func Compress(row []int) []int {
	result := make([]int, len(row))
	writePos := 0
	for _, v := range row {
		if v != 0 {
			result[writePos] = v
			writePos++
		}
	}
	return result
}

// MergeLeft compresses the row and merges equal neighbours from left to right.
// Each tile takes part in at most one merge, so [2,2,2,0] becomes [4,2,0,0].
// Returns the new row and the score gained from merges.
func MergeLeft(row []int) ([]int, int) {
	compressed := Compress(row)
	result := make([]int, len(row))
	score := 0
	writePos := 0

	for i := 0; i < len(compressed); {
		v := compressed[i]
		if v == 0 {
			break
		}
		if i+1 < len(compressed) && compressed[i+1] == v {
			result[writePos] = v * 2
			score += v * 2
			i += 2
		} else {
			result[writePos] = v
			i++
		}
		writePos++
	}

	return result, score
}

// Transpose returns the matrix transpose of the board.
func Transpose(b Board) Board {
	result := emptyBoard(b.Size())
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			result[y][x] = b[x][y]
		}
	}
	return result
}

// ReverseRows returns the board mirrored horizontally.
func ReverseRows(b Board) Board {
	n := b.Size()
	result := emptyBoard(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			result[y][x] = b[y][n-1-x]
		}
	}
	return result
}

// slideLeft merges every row to the left without computing the changed flag.
func slideLeft(b Board) (Board, int) {
	result := make(Board, b.Size())
	total := 0
	for y, row := range b {
		newRow, score := MergeLeft(row)
		result[y] = newRow
		total += score
	}
	return result, total
}

func slideRight(b Board) (Board, int) {
	slid, score := slideLeft(ReverseRows(b))
	return ReverseRows(slid), score
}

func slideUp(b Board) (Board, int) {
	slid, score := slideLeft(Transpose(b))
	return Transpose(slid), score
}

func slideDown(b Board) (Board, int) {
	slid, score := slideRight(Transpose(b))
	return Transpose(slid), score
}

// result compares the final board with the original input.
func result(before, after Board, score int) MoveResult {
	return MoveResult{
		Board:   after,
		Score:   score,
		Changed: !before.Equal(after),
	}
}

// MoveLeft slides all tiles left and merges.
func MoveLeft(b Board) MoveResult {
	slid, score := slideLeft(b)
	return result(b, slid, score)
}

// MoveRight slides all tiles right: mirror, move left, mirror back.
func MoveRight(b Board) MoveResult {
	slid, score := slideRight(b)
	return result(b, slid, score)
}

// MoveUp slides all tiles up: transpose, move left, transpose back.
func MoveUp(b Board) MoveResult {
	slid, score := slideUp(b)
	return result(b, slid, score)
}

// MoveDown slides all tiles down: transpose, move right, transpose back.
func MoveDown(b Board) MoveResult {
	slid, score := slideDown(b)
	return result(b, slid, score)
}

// Move performs a move in the given direction.
// An unknown direction leaves the board unchanged.
func Move(b Board, dir Direction) MoveResult {
	switch dir {
	case DirLeft:
		return MoveLeft(b)
	case DirRight:
		return MoveRight(b)
	case DirUp:
		return MoveUp(b)
	case DirDown:
		return MoveDown(b)
	default:
		return MoveResult{Board: b.Clone()}
	}
}

// SpawnTile places a 2 on a uniformly chosen empty cell, mutating b.
// Returns false and leaves b untouched when the board is full.
func SpawnTile(b Board, rng Source) bool {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		return false
	}

	cell := cells[rng.Choice(len(cells))]
	b[cell.Row][cell.Col] = spawnValue
	return true
}

// HasWon returns true if any tile has reached target.
func HasWon(b Board, target int) bool {
	return b.MaxTile() >= target
}

// HasPossibleMerge returns true if any two edge-sharing tiles hold the same value.
// Every pair is checked, including those along the last row and column.
func HasPossibleMerge(b Board) bool {
	n := b.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			val := b[y][x]
			if val == 0 {
				continue
			}
			// Right neighbor
			if x < n-1 && b[y][x+1] == val {
				return true
			}
			// Bottom neighbor
			if y < n-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// HasMoves returns true if some move would still change the board.
func HasMoves(b Board) bool {
	return len(b.EmptyCells()) > 0 || HasPossibleMerge(b)
}
