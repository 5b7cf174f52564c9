package entity

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Game is a single session: one board, the seed to move and the last evaluated status.
type Game struct {
	ID     string
	Board  Board
	Turn   Seed
	First  Seed
	Status Status
	Moves  []Move
}

func NewGame(id string, first Seed) *Game {
	if first != Nought {
		first = Cross
	}

	return &Game{
		ID:     id,
		Turn:   first,
		First:  first,
		Status: StatusInProgress,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Game) IsOngoing() bool {
	return !that.IsFinished()
}

func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}

// Reset starts a new game on the same session.
func (that *Game) Reset() {
	that.Board.Reset()
	that.Turn = that.First
	that.Status = StatusInProgress
	that.Moves = nil
}
