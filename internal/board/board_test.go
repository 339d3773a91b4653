package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, size, winLength int) *Board {
	t.Helper()

	b, err := New(size, winLength)
	require.NoError(t, err)

	return b
}

// playerGrid flattens the board into player ids for easy comparison.
func playerGrid(b *Board) [][]int {
	out := make([][]int, b.Size())
	for row := range out {
		out[row] = make([]int, b.Size())
		for col := range out[row] {
			if stone := b.At(row, col); stone != nil {
				out[row][col] = stone.PlayerID()
			}
		}
	}

	return out
}

func TestNew(t *testing.T) {
	t.Run("Rejects non-positive size", func(t *testing.T) {
		// When: a board of size 0 is requested
		_, err := New(0, 1)

		// Then: ErrInvalidSize is returned
		require.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("Rejects win length longer than the board", func(t *testing.T) {
		// When: a 3x3 board with win length 4 is requested
		_, err := New(3, 4)

		// Then: ErrInvalidWinLength is returned
		require.ErrorIs(t, err, ErrInvalidWinLength)
	})

	t.Run("Creates an empty board", func(t *testing.T) {
		// When: a valid board is created
		b := newTestBoard(t, 6, 4)

		// Then: every cell is empty
		for row := 0; row < 6; row++ {
			for col := 0; col < 6; col++ {
				assert.False(t, b.IsOccupied(row, col))
			}
		}
		assert.Equal(t, 6, b.Size())
		assert.Equal(t, 4, b.WinLength())
	})
}

func TestBoard_NextAvailableRow(t *testing.T) {
	t.Run("Empty column returns the bottom row", func(t *testing.T) {
		// Given: an empty 6x6 board
		b := newTestBoard(t, 6, 4)

		// When: asking for the landing row of column 2
		row, ok := b.NextAvailableRow(2)

		// Then: the stone lands on the bottom row
		require.True(t, ok)
		assert.Equal(t, 5, row)
	})

	t.Run("Partially filled column returns the first empty row from the bottom", func(t *testing.T) {
		// Given: two stones in column 0
		b := newTestBoard(t, 6, 4)
		ids := NewIDAllocator(1)
		b.Place(5, 0, ids.NewStone(1))
		b.Place(4, 0, ids.NewStone(2))

		// When: asking for the landing row
		row, ok := b.NextAvailableRow(0)

		// Then: row 3 is next
		require.True(t, ok)
		assert.Equal(t, 3, row)
	})

	t.Run("Full column reports full", func(t *testing.T) {
		// Given: a filled column
		b := newTestBoard(t, 4, 4)
		ids := NewIDAllocator(1)
		for row := 0; row < 4; row++ {
			b.Place(row, 1, ids.NewStone(1+row%2))
		}

		// When: asking for the landing row
		_, ok := b.NextAvailableRow(1)

		// Then: the column is reported full
		assert.False(t, ok)
	})
}

func TestBoard_IsOccupied_OutOfBoundsPanics(t *testing.T) {
	// Given: a 6x6 board
	b := newTestBoard(t, 6, 4)

	// Then: querying off-board cells fails loudly
	assert.Panics(t, func() { b.IsOccupied(6, 0) })
	assert.Panics(t, func() { b.IsOccupied(0, -1) })
}

func TestBoard_IsFullAndReset(t *testing.T) {
	// Given: a 2x2 board filled with stones
	b := newTestBoard(t, 2, 2)
	ids := NewIDAllocator(1)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			b.Place(row, col, ids.NewStone(1))
		}
	}
	require.True(t, b.IsFull())

	// When: the board is reset
	b.Reset()

	// Then: it is empty again
	assert.False(t, b.IsFull())
	assert.False(t, b.IsOccupied(0, 0))
}

func TestBoard_CheckWin(t *testing.T) {
	axes := map[string][2]int{
		"horizontal":       {0, 1},
		"vertical":         {1, 0},
		"diagonal down":    {1, 1},
		"diagonal up-left": {1, -1},
	}

	for size := 1; size <= 8; size++ {
		for winLength := 1; winLength <= size; winLength++ {
			for name, dir := range axes {
				// the run starts at a corner that leaves room for winLength cells along dir
				startRow, startCol := 0, 0
				if dir[1] < 0 {
					startCol = size - 1
				}

				t.Run(name, func(t *testing.T) {
					// Given: winLength-1 stones of player 1 along the axis
					b := newTestBoard(t, size, winLength)
					ids := NewIDAllocator(1)
					for step := 0; step < winLength-1; step++ {
						b.Place(startRow+step*dir[0], startCol+step*dir[1], ids.NewStone(1))
					}

					// Then: the last placed stone of the short run does not win (unless the run is a single stone)
					if winLength > 1 {
						lastRow, lastCol := startRow+(winLength-2)*dir[0], startCol+(winLength-2)*dir[1]
						assert.False(t, b.CheckWin(lastRow, lastCol, 1), "size %d length %d", size, winLength)
					}

					// When: the completing stone is placed
					row, col := startRow+(winLength-1)*dir[0], startCol+(winLength-1)*dir[1]
					b.Place(row, col, ids.NewStone(1))

					// Then: it wins
					assert.True(t, b.CheckWin(row, col, 1), "size %d length %d", size, winLength)
				})
			}
		}
	}
}

func TestBoard_CheckWin_AnchorInTheMiddle(t *testing.T) {
	// Given: X X _ X on the bottom row
	b := newTestBoard(t, 6, 4)
	ids := NewIDAllocator(1)
	b.Place(5, 0, ids.NewStone(1))
	b.Place(5, 1, ids.NewStone(1))
	b.Place(5, 3, ids.NewStone(1))

	// When: the gap is filled
	b.Place(5, 2, ids.NewStone(1))

	// Then: the anchor is counted once and both sides join into a run of four
	assert.True(t, b.CheckWin(5, 2, 1))
	assert.Equal(t, []Position{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, b.WinningLine(5, 2, 1))
}

func TestBoard_CheckWin_OpponentStonesBreakTheRun(t *testing.T) {
	// Given: X X O X X on the bottom row
	b := newTestBoard(t, 6, 4)
	ids := NewIDAllocator(1)
	for col, player := range []int{1, 1, 2, 1, 1} {
		b.Place(5, col, ids.NewStone(player))
	}

	// Then: neither side of the opponent stone reaches four
	assert.False(t, b.CheckWin(5, 1, 1))
	assert.False(t, b.CheckWin(5, 3, 1))
	assert.Nil(t, b.WinningLine(5, 3, 1))
}

func TestBoard_Rotate(t *testing.T) {
	t.Run("Moves (row, col) to (size-1-col, row)", func(t *testing.T) {
		// Given: a single stone at (5, 0)
		b := newTestBoard(t, 6, 4)
		stone := NewIDAllocator(1).NewStone(1)
		b.Place(5, 0, stone)

		// When: the board rotates
		b.Rotate()

		// Then: the stone is at (5, 5), no gravity applied
		assert.Same(t, stone, b.At(5, 5))
		assert.False(t, b.IsOccupied(5, 0))
	})

	t.Run("Vertical runs become horizontal", func(t *testing.T) {
		// Given: a vertical run in column 0
		b := newTestBoard(t, 6, 4)
		ids := NewIDAllocator(1)
		for row := 2; row < 6; row++ {
			b.Place(row, 0, ids.NewStone(1))
		}

		// When: the board rotates
		b.Rotate()

		// Then: the run lies on the bottom row
		for col := 2; col < 6; col++ {
			assert.True(t, b.IsOccupied(5, col))
		}
		assert.True(t, b.CheckWin(5, 2, 1))
	})

	t.Run("Four rotations restore the grid", func(t *testing.T) {
		// Given: an irregular arrangement of stones
		b := newTestBoard(t, 5, 4)
		ids := NewIDAllocator(1)
		b.Place(0, 1, ids.NewStone(1))
		b.Place(2, 3, ids.NewStone(2))
		b.Place(4, 4, ids.NewStone(1))
		b.Place(3, 0, ids.NewStone(2))
		before := b.Snapshot()

		// When: rotating four times
		for range 4 {
			b.Rotate()
		}

		// Then: every stone is back where it started
		assert.Equal(t, before, b.Snapshot())
	})
}

func TestBoard_ApplyGravity(t *testing.T) {
	t.Run("Compacts columns preserving order", func(t *testing.T) {
		// Given: floating stones in column 2
		b := newTestBoard(t, 6, 4)
		ids := NewIDAllocator(1)
		top := ids.NewStone(1)
		bottom := ids.NewStone(2)
		b.Place(0, 2, top)
		b.Place(3, 2, bottom)

		// When: gravity applies
		b.ApplyGravity()

		// Then: the stones rest at the bottom in the same order
		assert.Same(t, bottom, b.At(5, 2))
		assert.Same(t, top, b.At(4, 2))
		assert.False(t, b.IsOccupied(0, 2))
		assert.False(t, b.IsOccupied(3, 2))
	})

	t.Run("Is idempotent", func(t *testing.T) {
		// Given: a rotated board with floating stones
		b := newTestBoard(t, 6, 4)
		ids := NewIDAllocator(1)
		for _, pos := range []Position{{5, 0}, {4, 0}, {5, 1}, {5, 3}, {4, 3}, {3, 3}} {
			b.Place(pos.Row, pos.Col, ids.NewStone(1+pos.Col%2))
		}
		b.Rotate()

		// When: gravity applies twice
		b.ApplyGravity()
		once := b.Snapshot()
		b.ApplyGravity()

		// Then: the second pass changes nothing
		assert.Equal(t, once, b.Snapshot())
		assert.Empty(t, b.Falls())
	})

	t.Run("Leaves no gap below a stone", func(t *testing.T) {
		// Given: stones scattered over the board
		b := newTestBoard(t, 6, 4)
		ids := NewIDAllocator(1)
		for _, pos := range []Position{{0, 0}, {2, 0}, {1, 1}, {5, 1}, {3, 4}, {0, 5}, {4, 5}} {
			b.Place(pos.Row, pos.Col, ids.NewStone(1))
		}

		// When: gravity applies
		b.ApplyGravity()

		// Then: every column is a contiguous block ending at the bottom row
		for col := 0; col < 6; col++ {
			seenEmpty := false
			for row := 5; row >= 0; row-- {
				if !b.IsOccupied(row, col) {
					seenEmpty = true
					continue
				}
				assert.False(t, seenEmpty, "gap below (%d, %d)", row, col)
			}
		}
	})

	t.Run("Tracks previous rows by stone id", func(t *testing.T) {
		// Given: a stone floating at row 1
		b := newTestBoard(t, 6, 4)
		stone := NewIDAllocator(7).NewStone(2)
		b.Place(1, 4, stone)

		// When: gravity applies
		b.ApplyGravity()

		// Then: its previous row and fall are known
		row, ok := b.PreviousRow(stone.ID())
		require.True(t, ok)
		assert.Equal(t, 1, row)
		assert.Equal(t, []Fall{{StoneID: 7, Col: 4, FromRow: 1, ToRow: 5}}, b.Falls())
	})
}

func TestBoard_RotateThenSettle(t *testing.T) {
	// Given: player 1 stacked in column 0 and player 2 stacked in column 1
	//   . . . .
	//   . . . .
	//   1 2 . .
	//   1 2 . .
	b := newTestBoard(t, 4, 4)
	ids := NewIDAllocator(1)
	b.Place(3, 0, ids.NewStone(1))
	b.Place(2, 0, ids.NewStone(1))
	b.Place(3, 1, ids.NewStone(2))
	b.Place(2, 1, ids.NewStone(2))

	// When: the board rotates counterclockwise and settles
	b.Rotate()
	b.ApplyGravity()

	// Then: the old columns lie along the bottom rows
	assert.Equal(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 2, 2},
		{0, 0, 1, 1},
	}, playerGrid(b))
}

func TestIDAllocator(t *testing.T) {
	// Given: two independent allocators
	first := NewIDAllocator(1)
	second := NewIDAllocator(1)

	// When: stones are created from both
	a := first.NewStone(1)
	b := first.NewStone(2)
	c := second.NewStone(1)

	// Then: ids are monotonic per allocator and not shared
	assert.Equal(t, uint64(1), a.ID())
	assert.Equal(t, uint64(2), b.ID())
	assert.Equal(t, uint64(1), c.ID())
	assert.Equal(t, uint64(3), first.Next())
	assert.Equal(t, 2, b.PlayerID())
}
