package application

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("Plays an interactive game", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{LogLevel: "info", FirstPlayer: "X"}
		var out bytes.Buffer

		err := run(ctx, st.Logger, conf, strings.NewReader("1 1 2 1 1 2 3 1 2 2 1 3 3 3"), &out)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "'X' won! Bye!\n"))
	})

	t.Run("Keeps logs out of the game output", func(t *testing.T) {
		ctx, _ := suite.New(t)
		var logs, out bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
		conf := &config.Config{LogLevel: "info", FirstPlayer: "X"}

		// When: a game is played with logging at info
		err := run(ctx, logger, conf, strings.NewReader("1 1 2 1 1 2 3 1 2 2 1 3 3 3"), &out)

		// Then: the log lines go to the logger only
		require.NoError(t, err)
		assert.NotContains(t, out.String(), `{"time"`)
		assert.Contains(t, logs.String(), `"msg":"game started"`)
		assert.Contains(t, logs.String(), `"msg":"game finished"`)
	})

	t.Run("Offers another game when configured", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{FirstPlayer: "X", PlayAgain: true}
		var out bytes.Buffer

		err := run(ctx, st.Logger, conf, strings.NewReader("1 1 2 1 1 2 3 1 2 2 1 3 3 3 y 2 2 n"), &out)

		require.ErrorIs(t, err, console.ErrInputClosed)
		assert.Equal(t, 1, strings.Count(out.String(), "Play again? (y/n): "))
		assert.Contains(t, out.String(), "Play again? (y/n): Player 'X', enter your move")
	})

	t.Run("Reports closed input", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{FirstPlayer: "O"}

		err := run(ctx, st.Logger, conf, strings.NewReader("2 2"), &bytes.Buffer{})

		require.ErrorIs(t, err, console.ErrInputClosed)
	})

	t.Run("Replays a script", func(t *testing.T) {
		ctx, st := suite.New(t)
		path := filepath.Join(t.TempDir(), "draw.yml")
		script := "first: O\nmoves:\n  - [1, 1]\n  - [1, 3]\n  - [1, 2]\n  - [2, 1]\n  - [2, 3]\n  - [2, 2]\n  - [3, 1]\n"
		require.NoError(t, os.WriteFile(path, []byte(script), 0o600))
		conf := &config.Config{FirstPlayer: "X", ScriptPath: path}
		var out bytes.Buffer

		err := run(ctx, st.Logger, conf, strings.NewReader(""), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "7. O (3,1) draw\n")
		assert.True(t, strings.HasSuffix(out.String(), "It's a Draw! Bye!\n"))
	})

	t.Run("Fails on an illegal scripted move", func(t *testing.T) {
		ctx, st := suite.New(t)
		path := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("moves:\n  - [1, 1]\n  - [1, 1]\n"), 0o600))
		conf := &config.Config{FirstPlayer: "X", ScriptPath: path}
		var out bytes.Buffer

		err := run(ctx, st.Logger, conf, strings.NewReader(""), &out)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, "1. X (1,1) in_progress\n", out.String())
	})

	t.Run("Rejects an unknown first player", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{FirstPlayer: "Z"}

		err := run(ctx, st.Logger, conf, strings.NewReader(""), &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrInvalidSeed)
	})
}
