package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// GameManager owns game sessions: it creates them, routes moves for the seed whose
// turn it is and starts new games on finished sessions.
type GameManager struct {
	logger *slog.Logger
	first  entity.Seed
}

func NewGameManager(logger *slog.Logger, first entity.Seed) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		first:  first,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	return that.NewGameWithFirst(ctx, that.first)
}

// NewGameWithFirst creates a session where first moves first.
func (that *GameManager) NewGameWithFirst(ctx context.Context, first entity.Seed) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), first)

	that.logger.Debug("game created", "gameID", game.ID, "first", game.First.String())

	return game, nil
}

// MakeTurn plays (row, col) for the seed to move and returns the resulting status.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, row, col int) (entity.Status, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := ctx.Err(); err != nil {
		return game.Status, fmt.Errorf("failed make turn: %w", err)
	}

	seed := game.Turn
	if err := tictactoe.MakeTurn(game, seed, row, col); err != nil {
		log.Debug("move rejected", "seed", seed.String(), "row", row, "col", col, "error", err)

		return game.Status, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("move applied", "seed", seed.String(), "row", row, "col", col, "status", game.Status.String())

	if game.IsFinished() {
		log.Info("game finished", "status", game.Status.String(), "moves", len(game.Moves))
	}

	return game.Status, nil
}

// Restart clears a session so a new game can be played on it.
func (that *GameManager) Restart(ctx context.Context, game *entity.Game) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed restart game: %w", err)
	}

	game.Reset()

	that.logger.Debug("game restarted", "gameID", game.ID)

	return nil
}
