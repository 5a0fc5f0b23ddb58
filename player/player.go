package player

import (
	"amazons/experiments/metrics"
	"amazons/game"

	"github.com/rs/zerolog/log"
)

// Player is one side of a game as seen by the engine. A player keeps its own
// copy of the position and only ever learns about the opponent through the
// moves handed to Play.
type Player interface {
	Name() string
	// Initialize starts a game: the player plays as id on a copy of board with
	// queenCount queens per side at the given positions.
	Initialize(id game.Player, board *game.Graph, queenCount int, positions [game.NumPlayers][]uint)
	// Play receives the opponent's last move (game.NoMove when the player opens)
	// and returns the player's reply together with the effort spent finding it.
	Play(previous game.Move) (game.Move, metrics.SearchMetric)
	// Finalize releases the player's game state.
	Finalize()
}

// state is the position a player tracks between turns.
type state struct {
	id     game.Player
	board  *game.Graph
	queens *game.Queens
}

func (s *state) initialize(id game.Player, board *game.Graph, queenCount int, positions [game.NumPlayers][]uint) {
	for p := range positions {
		if len(positions[p]) != queenCount {
			panic("queen positions do not match the queen count")
		}
	}
	s.id = id
	s.board = board.Copy()
	s.queens = game.NewQueensFrom(positions)
	log.Debug().Msgf("%s initialized with %d queens on %d cells", id, queenCount, board.NumVertices())
}

func (s *state) playOpponent(m game.Move) {
	game.Play(s.board, s.queens, s.id.Other(), m)
}

func (s *state) playOwn(m game.Move) {
	game.Play(s.board, s.queens, s.id, m)
}

func (s *state) finalize() {
	s.board = nil
	s.queens = nil
}
