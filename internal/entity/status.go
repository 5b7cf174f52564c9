package entity

// Status is the outcome of evaluating the board after a move.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusDraw
	StatusCrossWon
	StatusNoughtWon
)

// Won returns the status of a game won by seed.
func Won(seed Seed) Status {
	switch seed {
	case Cross:
		return StatusCrossWon
	case Nought:
		return StatusNoughtWon
	default:
		return StatusInProgress
	}
}

// Winner returns the winning seed, or Empty when nobody has won.
func (that Status) Winner() Seed {
	switch that {
	case StatusCrossWon:
		return Cross
	case StatusNoughtWon:
		return Nought
	default:
		return Empty
	}
}

func (that Status) IsTerminal() bool {
	return that != StatusInProgress
}

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in_progress"
	case StatusDraw:
		return "draw"
	case StatusCrossWon:
		return "won(X)"
	case StatusNoughtWon:
		return "won(O)"
	default:
		return "unknown"
	}
}
