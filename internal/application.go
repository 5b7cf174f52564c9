package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/replay"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	first, err := entity.ParseSeed(conf.FirstPlayer)
	if err != nil {
		return fmt.Errorf("invalid first-player: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, first)

	if conf.ScriptPath != "" {
		return runScript(ctx, logger, conf.ScriptPath, gameManager, first, out)
	}

	session := console.New(logger, gameManager, in, out, console.WithPlayAgain(conf.PlayAgain))
	if _, err = session.Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}

func runScript(ctx context.Context, logger *slog.Logger, path string, gameManager *usecase.GameManager, first entity.Seed, out io.Writer) error {
	script, err := replay.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	runner := replay.NewRunner(logger, gameManager, first)

	game, steps, runErr := runner.Run(ctx, script)
	if _, err = io.WriteString(out, replay.Report(steps)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if runErr != nil {
		return fmt.Errorf("script replay failed: %w", runErr)
	}

	summary := console.RenderBoard(game.Board)
	if message := console.ResultMessage(game.Status); message != "" {
		summary += message + "\n"
	}

	if _, err = io.WriteString(out, summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
