package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, row, col int) (entity.Status, error)
	Restart(ctx context.Context, game *entity.Game) error
}

// Session plays games over a text stream: it prompts the player to move, re-prompts on
// invalid moves, prints the board after each move and the result at the end.
type Session struct {
	logger *slog.Logger
	uGame  gameUseCase

	in  *bufio.Scanner
	out io.Writer

	playAgain bool
}

type Option func(*Session)

// WithPlayAgain makes the session offer a new game on the same session after each result.
func WithPlayAgain(enabled bool) Option {
	return func(that *Session) {
		that.playAgain = enabled
	}
}

func New(logger *slog.Logger, uGame gameUseCase, in io.Reader, out io.Writer, opts ...Option) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	session := &Session{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		in:     scanner,
		out:    out,
	}

	for _, opt := range opts {
		opt(session)
	}

	return session
}

// Run plays a game until it is won or drawn, then, with WithPlayAgain, restarts it for as
// long as the player answers yes. It returns the last game played.
func (that *Session) Run(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "Run")

	game, err := that.uGame.NewGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	log.Info("game started", "gameID", game.ID)

	for {
		if err = that.play(ctx, game); err != nil {
			return game, err
		}

		if !that.playAgain {
			return game, nil
		}

		again, askErr := that.askPlayAgain()
		if askErr != nil || !again {
			return game, askErr
		}

		if err = that.uGame.Restart(ctx, game); err != nil {
			return game, fmt.Errorf("failed to restart game: %w", err)
		}

		log.Info("game restarted", "gameID", game.ID)
	}
}

// play runs the turn loop of game until its status is terminal.
func (that *Session) play(ctx context.Context, game *entity.Game) error {
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("game interrupted: %w", ctxErr)
		}

		row, col, err := that.readMove(game.Turn)
		if err != nil {
			return err
		}

		status, err := that.uGame.MakeTurn(ctx, game, row, col)
		if errors.Is(err, apperror.ErrInvalidMove) {
			if err = that.printf("This move at (%d,%d) is not valid. Try again...\n", row+1, col+1); err != nil {
				return err
			}
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		if err = that.printf("%s", RenderBoard(game.Board)); err != nil {
			return err
		}

		if status.IsTerminal() {
			return that.printf("%s\n", ResultMessage(status))
		}
	}
}

// askPlayAgain reads a yes/no answer. Closed input after a finished game counts as no.
func (that *Session) askPlayAgain() (bool, error) {
	if err := that.printf("Play again? (y/n): "); err != nil {
		return false, err
	}

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}

		return false, nil
	}

	switch strings.ToLower(that.in.Text()) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readMove prompts seed for a move until two integers are entered and returns them zero-based.
func (that *Session) readMove(seed entity.Seed) (int, int, error) {
	for {
		if err := that.printf("Player '%s', enter your move (row[1-3] column[1-3]): ", seed); err != nil {
			return 0, 0, err
		}

		row, rowErr := that.readInt()
		if errors.Is(rowErr, ErrInputClosed) {
			return 0, 0, rowErr
		}

		col, colErr := that.readInt()
		if errors.Is(colErr, ErrInputClosed) {
			return 0, 0, colErr
		}

		if rowErr != nil || colErr != nil {
			if err := that.printf("Please enter two numbers. Try again...\n"); err != nil {
				return 0, 0, err
			}
			continue
		}

		return row - 1, col - 1, nil
	}
}

func (that *Session) readInt() (int, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		return 0, ErrInputClosed
	}

	value, err := strconv.Atoi(that.in.Text())
	if err != nil {
		return 0, fmt.Errorf("not a number: %w", err)
	}

	return value, nil
}

func (that *Session) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
