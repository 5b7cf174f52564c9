package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Wins reports whether seed fills a complete line through (row, col): the row, the column,
// and the diagonals the cell lies on. The board is taken by value so scratch boards can be
// checked as well as the live one.
func Wins(seed entity.Seed, row, col int, board entity.Board) bool {
	if seed == entity.Empty || !entity.InRange(row, col) {
		return false
	}

	return board.At(row, 0) == seed && board.At(row, 1) == seed && board.At(row, 2) == seed ||
		board.At(0, col) == seed && board.At(1, col) == seed && board.At(2, col) == seed ||
		row == col && board.At(0, 0) == seed && board.At(1, 1) == seed && board.At(2, 2) == seed ||
		row+col == 2 && board.At(0, 2) == seed && board.At(1, 1) == seed && board.At(2, 0) == seed
}
