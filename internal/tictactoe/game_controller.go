package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// ApplyMove places seed at (row, col) on board.
func ApplyMove(board *entity.Board, seed entity.Seed, row, col int) error {
	if err := board.Set(row, col, seed); err != nil {
		return fmt.Errorf("apply move: %w", err)
	}

	return nil
}

// Evaluate returns the status after seed was placed at (row, col).
func Evaluate(board entity.Board, seed entity.Seed, row, col int) entity.Status {
	if Wins(seed, row, col, board) {
		return entity.Won(seed)
	}

	if IsGuaranteedDraw(board, seed) {
		return entity.StatusDraw
	}

	return entity.StatusInProgress
}

// MakeTurn plays one move on the game and records the resulting status.
func MakeTurn(gameInstance *entity.Game, seed entity.Seed, row, col int) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(gameInstance, seed, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := ApplyMove(&gameInstance.Board, seed, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Moves = append(gameInstance.Moves, entity.Move{Seed: seed, Row: row, Col: col})
	updateGameStatus(gameInstance, seed, row, col)

	return nil
}

// validateMove - checks turn order and bounds before the board is touched.
func validateMove(gameInstance *entity.Game, seed entity.Seed, row, col int) error {
	if gameInstance.Turn != seed {
		return apperror.ErrNotYourTurn
	}

	if !entity.InRange(row, col) {
		return fmt.Errorf("%w: %w: (%d,%d)", apperror.ErrInvalidMove, apperror.ErrOutOfRange, row, col)
	}

	return nil
}

// updateGameStatus - evaluates the board after a move and passes the turn while the game goes on.
func updateGameStatus(gameInstance *entity.Game, seed entity.Seed, row, col int) {
	gameInstance.Status = Evaluate(gameInstance.Board, seed, row, col)

	if !gameInstance.Status.IsTerminal() {
		gameInstance.Turn = seed.Opponent()
	}
}
