package config

import (
	"os"
	"path/filepath"
	"testing"

	"amazons/game"
	"amazons/searcher"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := &Config{}

		require.NoError(t, c.Load([]string{}))

		require.Equal(t, "game", c.Mode)
		require.Equal(t, game.Square, c.Shape)
		require.Equal(t, uint(8), c.Size)
		require.Equal(t, game.Player1, c.Starting)
		require.Equal(t, [game.NumPlayers]string{"search", "random"}, c.Players)
		require.Equal(t, searcher.DefaultDepthBias, c.DepthBias)
		require.Zero(t, c.MaxTurns, "Games should not be cut short unless asked")
		require.Equal(t, zerolog.InfoLevel, c.LogLevel)
	})

	t.Run("flags", func(t *testing.T) {
		c := &Config{}

		err := c.Load([]string{"-shape", "donut", "-size", "10", "-starting", "2", "-player2", "search", "-log-level", "debug"})

		require.NoError(t, err)
		require.Equal(t, game.Donut, c.Shape)
		require.Equal(t, uint(9), c.Size, "Size should be adjusted to the shape")
		require.Equal(t, game.Player2, c.Starting)
		require.Equal(t, "search", c.Players[1])
		require.Equal(t, zerolog.DebugLevel, c.LogLevel)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("AMAZONS_SIZE", "12")
		t.Setenv("AMAZONS_SHAPE", "8")
		c := &Config{}

		require.NoError(t, c.Load([]string{}))

		require.Equal(t, game.Eight, c.Shape)
		require.Equal(t, uint(12), c.Size)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "amazons.conf")
		require.NoError(t, os.WriteFile(path, []byte("mode experiment\ngames 3\n"), 0644))
		c := &Config{}

		require.NoError(t, c.Load([]string{"-config", path}))

		require.Equal(t, "experiment", c.Mode)
		require.Equal(t, 3, c.Games)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, args := range [][]string{
			{"-shape", "hexagon"},
			{"-starting", "3"},
			{"-player1", "oracle"},
			{"-mode", "server"},
			{"-depth-bias", "0.5"},
			{"-ratio-kept", "0"},
			{"-log-level", "loud"},
		} {
			c := &Config{}
			require.Error(t, c.Load(args), "%v", args)
		}
	})
}
