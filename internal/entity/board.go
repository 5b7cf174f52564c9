package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// BoardSize is the number of rows and columns of the grid.
const BoardSize = 3

// Seed is the content of a cell.
type Seed uint8

const (
	Empty Seed = iota
	Cross
	Nought
)

const (
	PlayerX = "X"
	PlayerO = "O"
)

// ParseSeed converts a player mark ("X" or "O") to a Seed.
func ParseSeed(mark string) (Seed, error) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case PlayerX:
		return Cross, nil
	case PlayerO:
		return Nought, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidSeed, mark)
	}
}

// Opponent returns the other player's seed. Empty has no opponent.
func (that Seed) Opponent() Seed {
	switch that {
	case Cross:
		return Nought
	case Nought:
		return Cross
	default:
		return Empty
	}
}

func (that Seed) String() string {
	switch that {
	case Cross:
		return PlayerX
	case Nought:
		return PlayerO
	default:
		return ""
	}
}

// Cell is a zero-based board coordinate.
type Cell struct {
	Row int
	Col int
}

// Board is the 3x3 grid. The zero value is an empty board, and copying a Board
// copies its cells.
type Board struct {
	cells [BoardSize][BoardSize]Seed
}

// NewBoard returns a board filled row by row from rows.
func NewBoard(rows [BoardSize][BoardSize]Seed) Board {
	return Board{cells: rows}
}

func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Get returns the seed at (row, col).
func (that *Board) Get(row, col int) (Seed, error) {
	if !InRange(row, col) {
		return Empty, fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfRange, row, col)
	}

	return that.cells[row][col], nil
}

// Set places seed at (row, col). A cell is written at most once per game.
func (that *Board) Set(row, col int, seed Seed) error {
	if !InRange(row, col) {
		return fmt.Errorf("%w: %w: (%d,%d)", apperror.ErrInvalidMove, apperror.ErrOutOfRange, row, col)
	}

	if seed != Cross && seed != Nought {
		return fmt.Errorf("%w: %w: %d", apperror.ErrInvalidMove, apperror.ErrInvalidSeed, seed)
	}

	if that.cells[row][col] != Empty {
		return fmt.Errorf("%w: cell (%d,%d) is occupied by %s", apperror.ErrInvalidMove, row, col, that.cells[row][col])
	}

	that.cells[row][col] = seed

	return nil
}

// At is Get without bounds reporting, for callers iterating valid coordinates.
func (that *Board) At(row, col int) Seed {
	return that.cells[row][col]
}

// EmptyCells lists the empty cells in row-major order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that.cells[row][col] == Empty {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Reset clears every cell.
func (that *Board) Reset() {
	that.cells = [BoardSize][BoardSize]Seed{}
}
