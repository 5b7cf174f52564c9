package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const rowSeparator = "-----------"

// RenderBoard draws the board as rows of " X | O |   " separated by dashes.
func RenderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			sb.WriteString(renderCell(board.At(row, col)))
			if col != entity.BoardSize-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if row != entity.BoardSize-1 {
			sb.WriteString(rowSeparator + "\n")
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

func renderCell(seed entity.Seed) string {
	switch seed {
	case entity.Cross:
		return " X "
	case entity.Nought:
		return " O "
	default:
		return "   "
	}
}

// ResultMessage is the line printed when a game ends.
func ResultMessage(status entity.Status) string {
	switch status {
	case entity.StatusCrossWon, entity.StatusNoughtWon:
		return "'" + status.Winner().String() + "' won! Bye!"
	case entity.StatusDraw:
		return "It's a Draw! Bye!"
	default:
		return ""
	}
}
