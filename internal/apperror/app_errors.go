package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("coordinate is out of range")
	ErrInvalidMove  = errors.New("invalid move")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrInvalidSeed  = errors.New("invalid seed")
)
