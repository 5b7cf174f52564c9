package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// maxDrawSearchCells bounds the early-draw search. Cyclic rotations of the seed sequence
// enumerate every assignment only up to this length.
const maxDrawSearchCells = 2

// IsGuaranteedDraw reports whether no way of filling the remaining cells can produce a win.
// currentPlayer is the seed that has just moved; Empty never forces a draw on an open board.
// With more than two empty cells the game is always reported as undecided, even when a draw
// is already certain.
func IsGuaranteedDraw(board entity.Board, currentPlayer entity.Seed) bool {
	cells := board.EmptyCells()

	if len(cells) > maxDrawSearchCells {
		return false
	}

	if len(cells) == 0 {
		return true
	}

	if currentPlayer.Opponent() == entity.Empty {
		return false
	}

	return !anyRotationWins(board, cells, seedSequence(currentPlayer, len(cells)))
}

// seedSequence returns the seeds that would fill n cells, starting with the opponent of current.
func seedSequence(current entity.Seed, n int) []entity.Seed {
	seeds := make([]entity.Seed, n)
	next := current
	for i := range seeds {
		next = next.Opponent()
		seeds[i] = next
	}

	return seeds
}

// anyRotationWins writes every cyclic rotation of seeds onto a copy of board at cells and
// reports whether any written seed completes a line.
func anyRotationWins(board entity.Board, cells []entity.Cell, seeds []entity.Seed) bool {
	if len(cells) > maxDrawSearchCells {
		panic(fmt.Sprintf("tictactoe: rotation search over %d cells, at most %d are exhaustive", len(cells), maxDrawSearchCells))
	}

	if len(seeds) != len(cells) {
		panic(fmt.Sprintf("tictactoe: %d seeds for %d cells", len(seeds), len(cells)))
	}

	rotation := append([]entity.Seed(nil), seeds...)
	for range len(cells) {
		scratch := board
		for i, cell := range cells {
			if err := scratch.Set(cell.Row, cell.Col, rotation[i]); err != nil {
				panic(fmt.Sprintf("tictactoe: scratch board rejected a remaining cell: %v", err))
			}
		}

		for i, cell := range cells {
			if Wins(rotation[i], cell.Row, cell.Col, scratch) {
				return true
			}
		}

		rotation = rotate(rotation)
	}

	return false
}

// rotate shifts seeds one position to the left.
func rotate(seeds []entity.Seed) []entity.Seed {
	if len(seeds) == 0 {
		return seeds
	}

	shifted := make([]entity.Seed, 0, len(seeds))
	shifted = append(shifted, seeds[1:]...)

	return append(shifted, seeds[0])
}
