package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize      = errors.New("board size must be positive")
	ErrInvalidWinLength = errors.New("winning row length must be between 1 and the board size")

	// directions are the four axes a run can lie on: horizontal, vertical, diagonal ↘ and diagonal ↙.
	directions = [][2]int{
		{0, 1},
		{1, 0},
		{1, 1},
		{1, -1},
	}
)

// Position addresses a cell; row 0 is the top of the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is a square matrix of cells, nil meaning empty.
type Grid [][]*Stone

func newGrid(size int) Grid {
	grid := make(Grid, size)
	for row := range grid {
		grid[row] = make([]*Stone, size)
	}

	return grid
}

// Clone copies the cell references. Stones are immutable, so the copy is safe to hand out.
func (that Grid) Clone() Grid {
	if that == nil {
		return nil
	}

	clone := make(Grid, len(that))
	for row := range that {
		clone[row] = make([]*Stone, len(that[row]))
		copy(clone[row], that[row])
	}

	return clone
}

// Fall describes a stone that moved during the last gravity pass.
type Fall struct {
	StoneID uint64 `json:"stone_id"`
	Col     int    `json:"col"`
	FromRow int    `json:"from_row"`
	ToRow   int    `json:"to_row"`
}

type Board struct {
	size      int
	winLength int
	grid      Grid

	// previous is the grid as it was right before the last ApplyGravity.
	previous Grid
}

func New(size, winLength int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if winLength < 1 || winLength > size {
		return nil, fmt.Errorf("%w: %d (size %d)", ErrInvalidWinLength, winLength, size)
	}

	return &Board{
		size:      size,
		winLength: winLength,
		grid:      newGrid(size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) WinLength() int {
	return that.winLength
}

// At returns the stone in a cell, or nil. Panics when the cell is off the board.
func (that *Board) At(row, col int) *Stone {
	that.mustContain(row, col)

	return that.grid[row][col]
}

// NextAvailableRow scans a column from the bottom up and returns the first empty row.
// ok is false when the column is full.
func (that *Board) NextAvailableRow(col int) (int, bool) {
	that.mustContain(that.size-1, col)

	for row := that.size - 1; row >= 0; row-- {
		if that.grid[row][col] == nil {
			return row, true
		}
	}

	return 0, false
}

// IsOccupied reports whether a cell holds a stone. Callers validate bounds first; an off-board cell panics.
func (that *Board) IsOccupied(row, col int) bool {
	that.mustContain(row, col)

	return that.grid[row][col] != nil
}

// Place writes a stone into a cell without any checks.
func (that *Board) Place(row, col int, stone *Stone) {
	that.mustContain(row, col)

	that.grid[row][col] = stone
}

// Reset swaps in an entirely empty grid of the same size.
func (that *Board) Reset() {
	that.grid = newGrid(that.size)
	that.previous = nil
}

func (that *Board) IsFull() bool {
	for _, cells := range that.grid {
		for _, stone := range cells {
			if stone == nil {
				return false
			}
		}
	}

	return true
}

// CheckWin reports whether the stone at (row, col) completes a run of at least WinLength stones of playerID
// on any axis. The anchor cell is counted once and is assumed to belong to playerID.
func (that *Board) CheckWin(row, col, playerID int) bool {
	that.mustContain(row, col)

	for _, dir := range directions {
		count := 1 + that.countRun(row, col, playerID, dir[0], dir[1]) + that.countRun(row, col, playerID, -dir[0], -dir[1])
		if count >= that.winLength {
			return true
		}
	}

	return false
}

// WinningLine returns the cells of the first winning run through (row, col), ordered along the axis,
// or nil if there is none.
func (that *Board) WinningLine(row, col, playerID int) []Position {
	that.mustContain(row, col)

	for _, dir := range directions {
		backward := that.countRun(row, col, playerID, -dir[0], -dir[1])
		forward := that.countRun(row, col, playerID, dir[0], dir[1])

		if 1+backward+forward < that.winLength {
			continue
		}

		line := make([]Position, 0, 1+backward+forward)
		for step := -backward; step <= forward; step++ {
			line = append(line, Position{Row: row + step*dir[0], Col: col + step*dir[1]})
		}

		return line
	}

	return nil
}

// countRun counts contiguous playerID stones starting next to (row, col) and walking by (deltaRow, deltaCol).
func (that *Board) countRun(row, col, playerID, deltaRow, deltaCol int) int {
	count := 0

	for r, c := row+deltaRow, col+deltaCol; that.contains(r, c); r, c = r+deltaRow, c+deltaCol {
		stone := that.grid[r][c]
		if stone == nil || stone.playerID != playerID {
			break
		}
		count++
	}

	return count
}

// Rotate turns the grid 90° counterclockwise: (row, col) moves to (size-1-col, row).
// Stones are left floating; ApplyGravity must follow.
func (that *Board) Rotate() {
	rotated := newGrid(that.size)

	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			rotated[that.size-1-col][row] = that.grid[row][col]
		}
	}

	that.grid = rotated
}

// ApplyGravity compacts every column toward the bottom, keeping the stones' vertical order.
// The grid is snapshotted first so PreviousRow and Falls can report how far each stone dropped.
func (that *Board) ApplyGravity() {
	that.previous = that.grid.Clone()

	for col := 0; col < that.size; col++ {
		emptyRow := that.size - 1

		for row := that.size - 1; row >= 0; row-- {
			stone := that.grid[row][col]
			if stone == nil {
				continue
			}

			if row != emptyRow {
				that.grid[emptyRow][col] = stone
				that.grid[row][col] = nil
			}
			emptyRow--
		}
	}
}

// PreviousRow finds the row a stone occupied before the last gravity pass.
func (that *Board) PreviousRow(stoneID uint64) (int, bool) {
	for row, cells := range that.previous {
		for _, stone := range cells {
			if stone != nil && stone.id == stoneID {
				return row, true
			}
		}
	}

	return 0, false
}

// Falls lists the stones the last gravity pass moved, in row-major order of their new cells.
func (that *Board) Falls() []Fall {
	if that.previous == nil {
		return nil
	}

	var falls []Fall

	for row, cells := range that.grid {
		for col, stone := range cells {
			if stone == nil {
				continue
			}

			fromRow, ok := that.PreviousRow(stone.id)
			if !ok || fromRow == row {
				continue
			}

			falls = append(falls, Fall{StoneID: stone.id, Col: col, FromRow: fromRow, ToRow: row})
		}
	}

	return falls
}

// Snapshot returns a copy of the current grid.
func (that *Board) Snapshot() Grid {
	return that.grid.Clone()
}

func (that *Board) contains(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Board) mustContain(row, col int) {
	if !that.contains(row, col) {
		panic(fmt.Sprintf("board: cell (%d, %d) is outside a %dx%d board", row, col, that.size, that.size))
	}
}
