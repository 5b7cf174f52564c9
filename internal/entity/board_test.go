package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Set(t *testing.T) {
	t.Run("Places a seed on an empty cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: X is placed in the center
		err := board.Set(1, 1, Cross)

		// Then: only that cell changes
		require.NoError(t, err)
		expected := NewBoard([BoardSize][BoardSize]Seed{
			{Empty, Empty, Empty},
			{Empty, Cross, Empty},
			{Empty, Empty, Empty},
		})
		assert.Equal(t, expected, board)
	})

	t.Run("Rejects an occupied cell and leaves the board unchanged", func(t *testing.T) {
		// Given: a board where X holds the corner
		var board Board
		require.NoError(t, board.Set(0, 0, Cross))
		before := board

		// When: O tries the same cell
		err := board.Set(0, 0, Nought)

		// Then: ErrInvalidMove is returned and nothing moved
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, board)
	})

	t.Run("Rejects coordinates out of range", func(t *testing.T) {
		var board Board

		for _, cell := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			// When: a seed is placed outside the grid
			err := board.Set(cell.Row, cell.Col, Cross)

			// Then: the move is invalid because of the range
			require.ErrorIs(t, err, apperror.ErrInvalidMove, "cell %v", cell)
			require.ErrorIs(t, err, apperror.ErrOutOfRange, "cell %v", cell)
		}

		assert.Len(t, board.EmptyCells(), BoardSize*BoardSize)
	})

	t.Run("Rejects the empty seed", func(t *testing.T) {
		var board Board

		err := board.Set(2, 2, Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.ErrorIs(t, err, apperror.ErrInvalidSeed)
	})
}

func TestBoard_Get(t *testing.T) {
	t.Run("Returns the cell value", func(t *testing.T) {
		// Given: a board with O in the bottom right corner
		var board Board
		require.NoError(t, board.Set(2, 2, Nought))

		// When: reading the corner and a neighbour
		corner, err := board.Get(2, 2)
		require.NoError(t, err)
		neighbour, err := board.Get(2, 1)
		require.NoError(t, err)

		// Then: the values match what was placed
		assert.Equal(t, Nought, corner)
		assert.Equal(t, Empty, neighbour)
	})

	t.Run("Fails with ErrOutOfRange", func(t *testing.T) {
		var board Board

		_, err := board.Get(3, 1)

		assert.ErrorIs(t, err, apperror.ErrOutOfRange)
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Lists empty cells in row-major order", func(t *testing.T) {
		// Given: a board with a few occupied cells
		board := NewBoard([BoardSize][BoardSize]Seed{
			{Cross, Empty, Nought},
			{Empty, Cross, Cross},
			{Nought, Empty, Empty},
		})

		// When: collecting the empty cells
		cells := board.EmptyCells()

		// Then: they come row by row, left to right
		assert.Equal(t, []Cell{{0, 1}, {1, 0}, {2, 1}, {2, 2}}, cells)
	})

	t.Run("Full board has no empty cells", func(t *testing.T) {
		board := NewBoard([BoardSize][BoardSize]Seed{
			{Cross, Nought, Cross},
			{Cross, Nought, Nought},
			{Nought, Cross, Cross},
		})

		assert.Empty(t, board.EmptyCells())
	})
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	// Given: a board and a copy of it
	var board Board
	scratch := board

	// When: the copy is written
	require.NoError(t, scratch.Set(0, 0, Cross))

	// Then: the source board stays empty
	assert.Equal(t, Empty, board.At(0, 0))
	assert.Equal(t, Cross, scratch.At(0, 0))
}

func TestBoard_Reset(t *testing.T) {
	var board Board
	require.NoError(t, board.Set(1, 2, Cross))

	board.Reset()

	assert.Equal(t, Board{}, board)
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		mark string
		want Seed
	}{
		{"X", Cross},
		{"x", Cross},
		{" O ", Nought},
		{"o", Nought},
	}

	for _, tt := range tests {
		got, err := ParseSeed(tt.mark)
		require.NoError(t, err, tt.mark)
		assert.Equal(t, tt.want, got, tt.mark)
	}

	_, err := ParseSeed("Z")
	assert.ErrorIs(t, err, apperror.ErrInvalidSeed)
}

func TestSeed_Opponent(t *testing.T) {
	assert.Equal(t, Nought, Cross.Opponent())
	assert.Equal(t, Cross, Nought.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}
