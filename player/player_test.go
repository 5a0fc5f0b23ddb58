package player

import (
	"amazons/game"
	"amazons/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func positions(q *game.Queens) [game.NumPlayers][]uint {
	return [game.NumPlayers][]uint{
		append([]uint{}, q.Positions(game.Player1)...),
		append([]uint{}, q.Positions(game.Player2)...),
	}
}

func TestSearchPlayer(t *testing.T) {
	t.Run("opening on a 4x4 grid", func(t *testing.T) {
		board := game.NewGridGraph(4)
		p := NewSearchPlayer("alphabeta", 1, searcher.WithFixedDepth(1))
		p.Initialize(game.Player1, board, 1, [game.NumPlayers][]uint{{0}, {15}})

		got, metric := p.Play(game.NoMove)

		require.Equal(t, game.Move{QueenSrc: 0, QueenDst: 10, ArrowDst: 11}, got)
		require.Equal(t, metric, p.LastMetrics())
		require.True(t, p.queens.ExistsForPlayer(game.Player1, 10), "The player should track its own move")
		require.True(t, p.board.IsIsolated(11))
		require.False(t, board.IsIsolated(11), "The engine's board should not change")
	})

	t.Run("tracking the opponent", func(t *testing.T) {
		gs := game.NewGameState(game.Square, 8, game.Player1)
		p := NewSearchPlayer("alphabeta", 1, searcher.WithFixedDepth(1))
		p.Initialize(game.Player2, gs.Board, gs.Queens.Count(), positions(gs.Queens))
		opening := game.Move{QueenSrc: 8, QueenDst: 9, ArrowDst: 10}
		require.NoError(t, gs.Play(opening))

		reply, _ := p.Play(opening)

		require.NoError(t, gs.Play(reply), "The reply should be legal on the engine's board")
		require.Equal(t, gs.Hash(), game.Hash(p.board, p.queens, game.Player1), "Both sides should see the same position")
	})

	t.Run("mismatched queen count", func(t *testing.T) {
		p := NewSearchPlayer("alphabeta", 1)

		require.Panics(t, func() {
			p.Initialize(game.Player1, game.NewGridGraph(4), 2, [game.NumPlayers][]uint{{0}, {15}})
		})
	})
}

func TestRandomPlayer(t *testing.T) {
	t.Run("always plays legal moves", func(t *testing.T) {
		gs := game.NewGameState(game.Clover, 15, game.Player1)
		players := [game.NumPlayers]*RandomPlayer{NewRandomPlayer("a", 1), NewRandomPlayer("b", 2)}
		for i, p := range players {
			p.Initialize(game.Player(i), gs.Board, gs.Queens.Count(), positions(gs.Queens))
		}

		previous := game.NoMove
		for !gs.IsOver() {
			m, _ := players[gs.CurrentPlayer].Play(previous)
			require.NoError(t, gs.Play(m))
			previous = m
		}
		require.NotEqual(t, game.Undefined, gs.Winner())
	})

	t.Run("stuck player", func(t *testing.T) {
		board := game.NewGridGraph(4)
		for _, pos := range []uint{1, 4, 5} {
			board.Disconnect(pos)
		}
		p := NewRandomPlayer("random", 1)
		p.Initialize(game.Player1, board, 1, [game.NumPlayers][]uint{{0}, {15}})

		got, _ := p.Play(game.NoMove)

		require.Equal(t, game.NoMove, got)
	})
}
