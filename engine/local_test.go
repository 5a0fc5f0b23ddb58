package engine

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/player"
	"amazons/searcher"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// cheater always sends the same move.
type cheater struct {
	move game.Move
}

func (c *cheater) Name() string { return "cheater" }
func (c *cheater) Initialize(game.Player, *game.Graph, int, [game.NumPlayers][]uint) {}
func (c *cheater) Play(game.Move) (game.Move, metrics.SearchMetric) {
	return c.move, metrics.SearchMetric{}
}
func (c *cheater) Finalize() {}

func TestLocalEngine(t *testing.T) {
	t.Run("random players finish a game", func(t *testing.T) {
		state := game.NewGameState(game.Square, 8, game.Player1)
		players := [game.NumPlayers]player.Player{
			player.NewRandomPlayer("random1", 1),
			player.NewRandomPlayer("random2", 2),
		}

		winner, gameMetric, moveMetrics := LocalEngine(players, state, WithID("test")).Run()

		require.NotEqual(t, game.Undefined, winner, "A game on a finite board should end")
		require.Equal(t, "test", gameMetric.ID)
		require.Empty(t, gameMetric.Forfeit, "Random players only send legal moves")
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Equal(t, players[winner].Name(), gameMetric.WinnerName)
		require.True(t, state.IsOver())
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.Equal(t, game.Player(i%2), mm.Player, "Players should alternate")
		}
	})

	t.Run("search player against random player", func(t *testing.T) {
		state := game.NewGameState(game.Donut, 9, game.Player2)
		players := [game.NumPlayers]player.Player{
			player.NewRandomPlayer("random", 3),
			player.NewSearchPlayer("alphabeta", 4, searcher.WithMaxDepth(2)),
		}

		winner, gameMetric, moveMetrics := LocalEngine(players, state).Run()

		require.NotEqual(t, game.Undefined, winner)
		require.Empty(t, gameMetric.Forfeit, "Search should only return legal moves")
		require.Equal(t, game.Player2, moveMetrics[0].Player)
		require.Positive(t, moveMetrics[0].Nodes, "Search moves should carry metrics")
		require.Zero(t, moveMetrics[1].Nodes, "Random moves have no search metrics")
	})

	t.Run("invalid move forfeits", func(t *testing.T) {
		state := game.NewGameState(game.Square, 8, game.Player1)
		players := [game.NumPlayers]player.Player{
			&cheater{move: game.Move{QueenSrc: 8, QueenDst: 63, ArrowDst: 0}},
			player.NewRandomPlayer("random", 1),
		}

		winner, gameMetric, moveMetrics := LocalEngine(players, state).Run()

		require.Equal(t, game.Player2, winner)
		require.Equal(t, "random", gameMetric.WinnerName)
		require.NotEmpty(t, gameMetric.Forfeit)
		require.Empty(t, moveMetrics)
	})

	t.Run("turn limit", func(t *testing.T) {
		state := game.NewGameState(game.Square, 8, game.Player1)
		players := [game.NumPlayers]player.Player{
			player.NewRandomPlayer("random1", 1),
			player.NewRandomPlayer("random2", 2),
		}

		winner, gameMetric, moveMetrics := LocalEngine(players, state, WithMaxTurns(3)).Run()

		require.Equal(t, game.Undefined, winner)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 3)
	})

	t.Run("no turn limit falls back to the engine bound", func(t *testing.T) {
		state := game.NewGameState(game.Square, 20, game.Player1)
		players := [game.NumPlayers]player.Player{
			player.NewRandomPlayer("random1", 1),
			player.NewRandomPlayer("random2", 2),
		}

		e := LocalEngine(players, state, WithMaxTurns(0))

		require.Equal(t, MaxTurns, e.(*localEngine).maxTurns)
		require.Greater(t, MaxTurns, int(state.Board.NumVertices()), "The bound should exceed any game on the largest board")
	})

	t.Run("exporting frames", func(t *testing.T) {
		dir := t.TempDir()
		state := game.NewGameState(game.Square, 8, game.Player1)
		players := [game.NumPlayers]player.Player{
			player.NewRandomPlayer("random1", 1),
			player.NewRandomPlayer("random2", 2),
		}

		LocalEngine(players, state, WithID("frames"), WithMaxTurns(2), WithExport(dir)).Run()

		entries, err := os.ReadDir(filepath.Join(dir, "frames"))
		require.NoError(t, err)
		require.Len(t, entries, 3, "The opening position and one frame per move")
		require.Equal(t, "0000.dot", entries[0].Name())
	})
}
