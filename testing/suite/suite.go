package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board builds a board from three rows of 'X', 'O' and '.' (empty).
func (that *Suite) Board(rows ...string) entity.Board {
	that.Helper()

	return BoardFromRows(that.T, rows...)
}

// BoardFromRows builds a board from three rows of 'X', 'O' and '.' (empty).
func BoardFromRows(t *testing.T, rows ...string) entity.Board {
	t.Helper()

	if len(rows) != entity.BoardSize {
		t.Fatalf("expected %d rows, got %d", entity.BoardSize, len(rows))
	}

	var cells [entity.BoardSize][entity.BoardSize]entity.Seed
	for row, line := range rows {
		if len(line) != entity.BoardSize {
			t.Fatalf("row %d: expected %d cells, got %q", row, entity.BoardSize, line)
		}

		for col, mark := range line {
			switch mark {
			case 'X':
				cells[row][col] = entity.Cross
			case 'O':
				cells[row][col] = entity.Nought
			case '.':
				cells[row][col] = entity.Empty
			default:
				t.Fatalf("row %d: unknown mark %q", row, mark)
			}
		}
	}

	return entity.NewBoard(cells)
}
