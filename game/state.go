package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type StateHash uint64

// GameState is the authoritative state of a game, owned by the engine. Players
// keep their own copies and only ever see moves.
type GameState struct {
	Shape         Shape
	Size          uint
	Board         *Graph
	Queens        *Queens
	CurrentPlayer Player
	PreviousMove  Move   // The last move played, NoMove before the first one
	Turn          int    // Number of moves played so far
	Won           Player // The winner, Undefined while the game goes on
	Forfeit       error  // Why the loser forfeited, nil when the game ended on the board
}

// NewGameState builds the board for shape and size and places the queens.
// The size is adjusted to what the shape supports.
func NewGameState(shape Shape, size uint, starting Player) *GameState {
	board, size := NewBoard(shape, size)
	if !shape.IsValid() {
		shape = DefaultShape
	}
	if starting != Player1 && starting != Player2 {
		panic(fmt.Sprintf("invalid starting player %d", starting))
	}
	return &GameState{
		Shape:         shape,
		Size:          size,
		Board:         board,
		Queens:        PlaceQueens(size, QueenCount(size)),
		CurrentPlayer: starting,
		PreviousMove:  NoMove,
		Won:           Undefined,
	}
}

func (gs *GameState) Copy() *GameState {
	c := *gs
	c.Board = gs.Board.Copy()
	c.Queens = gs.Queens.Copy()
	return &c
}

// Play validates m for the current player and applies it. An invalid move ends
// the game: the opponent wins and the move is not played.
func (gs *GameState) Play(m Move) error {
	if gs.Won != Undefined {
		return fmt.Errorf("game is over - no moves allowed")
	}
	if err := CheckMove(gs.Board, gs.Queens, gs.CurrentPlayer, m); err != nil {
		gs.Won = gs.CurrentPlayer.Other()
		gs.Forfeit = err
		return fmt.Errorf("%s forfeits: %w", gs.CurrentPlayer, err)
	}

	Play(gs.Board, gs.Queens, gs.CurrentPlayer, m)
	gs.PreviousMove = m
	gs.CurrentPlayer = gs.CurrentPlayer.Other()
	gs.Turn++
	return nil
}

// IsOver reports whether the game has ended and records the winner. The player
// to move is checked first, so when both sides are stuck the player to move loses.
func (gs *GameState) IsOver() bool {
	if gs.Won != Undefined {
		return true
	}
	for _, player := range []Player{gs.CurrentPlayer, gs.CurrentPlayer.Other()} {
		if MovableQueens(gs.Board, gs.Queens, player) == 0 {
			gs.Won = player.Other()
			return true
		}
	}
	return false
}

// Winner returns the winning player, Undefined while the game goes on.
func (gs *GameState) Winner() Player {
	return gs.Won
}

func (gs *GameState) Hash() StateHash {
	return Hash(gs.Board, gs.Queens, gs.CurrentPlayer)
}

// Hash fingerprints a position: remaining edges, queen positions and the player to move.
func Hash(board *Graph, queens *Queens, toMove Player) StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(toMove))

	for _, to := range board.edges {
		binary.Write(hasher, binary.LittleEndian, uint64(to))
	}

	for p := range queens.positions {
		for _, pos := range queens.positions[p] {
			binary.Write(hasher, binary.LittleEndian, uint64(pos))
		}
	}

	return StateHash(hasher.Sum64())
}
