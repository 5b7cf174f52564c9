package replay

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameUseCase interface {
	NewGameWithFirst(ctx context.Context, first entity.Seed) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, row, col int) (entity.Status, error)
}

// Step is one replayed move and the status evaluated after it.
type Step struct {
	Number int
	Move   entity.Move
	Status entity.Status
}

type Runner struct {
	logger *slog.Logger
	uGame  gameUseCase
	first  entity.Seed
}

// NewRunner builds a runner; first opens scripts that don't name a first player.
func NewRunner(logger *slog.Logger, uGame gameUseCase, first entity.Seed) *Runner {
	return &Runner{
		logger: logger.With("component", "replay"),
		uGame:  uGame,
		first:  first,
	}
}

// Run plays every move of the script and returns the steps played so far, also on error.
func (that *Runner) Run(ctx context.Context, script *Script) (*entity.Game, []Step, error) {
	log := that.logger.With("method", "Run")

	first, err := script.FirstSeed(that.first)
	if err != nil {
		return nil, nil, err
	}

	game, err := that.uGame.NewGameWithFirst(ctx, first)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start game: %w", err)
	}

	steps := make([]Step, 0, len(script.Moves))
	for i, coords := range script.Moves {
		number := i + 1
		if game.IsFinished() {
			return game, steps, fmt.Errorf("step %d: %w", number, apperror.ErrGameFinished)
		}

		seed := game.Turn
		row, col := coords[0]-1, coords[1]-1

		status, err := that.uGame.MakeTurn(ctx, game, row, col)
		if err != nil {
			return game, steps, fmt.Errorf("step %d (%d,%d): %w", number, coords[0], coords[1], err)
		}

		steps = append(steps, Step{
			Number: number,
			Move:   entity.Move{Seed: seed, Row: row, Col: col},
			Status: status,
		})
	}

	log.Info("script replayed", "gameID", game.ID, "steps", len(steps), "status", game.Status.String())

	return game, steps, nil
}

// Report formats steps one per line, with one-based coordinates.
func Report(steps []Step) string {
	var sb strings.Builder
	for _, step := range steps {
		fmt.Fprintf(&sb, "%d. %s (%d,%d) %s\n", step.Number, step.Move.Seed, step.Move.Row+1, step.Move.Col+1, step.Status)
	}

	return sb.String()
}
