package game

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var (
	ErrNoMove         = errors.New("no move")
	ErrQueenMisplaced = errors.New("queen misplaced")
	ErrArrowMisplaced = errors.New("arrow misplaced")
)

// open reports whether a ray may enter pos.
func open(board *Graph, queens *Queens, pos uint) bool {
	return pos != None && !queens.Exists(pos) && !board.IsIsolated(pos)
}

// CanReach returns the direction of the straight ray leading from src to dst, or
// NoDir when there is none. Every cell on the way, dst included, must be free.
func CanReach(board *Graph, queens *Queens, src, dst uint) Direction {
	if src == None || dst == None || src == dst {
		return NoDir
	}
	for dir := FirstDir; dir <= LastDir; dir++ {
		for pos := board.Neighbor(src, dir); open(board, queens, pos); pos = board.Neighbor(pos, dir) {
			if pos == dst {
				return dir
			}
		}
	}
	return NoDir
}

// IsValidMove checks one leg of a move. A queen leg needs player's queen on src.
func IsValidMove(board *Graph, queens *Queens, player Player, src, dst uint, isArrow bool) bool {
	if !isArrow && !queens.ExistsForPlayer(player, src) {
		return false
	}
	return CanReach(board, queens, src, dst) != NoDir
}

// IsValidArrow checks the arrow leg of m against the position before the queen
// moved. Shooting back onto the square the queen just left is always allowed.
func IsValidArrow(board *Graph, queens *Queens, m Move) bool {
	if m.ArrowDst == m.QueenSrc {
		return true
	}
	return CanReach(board, queens, m.QueenDst, m.ArrowDst) != NoDir
}

// CheckMove validates m for player without changing anything.
func CheckMove(board *Graph, queens *Queens, player Player, m Move) error {
	if m.IsNone() {
		return ErrNoMove
	}
	if !IsValidMove(board, queens, player, m.QueenSrc, m.QueenDst, false) {
		return fmt.Errorf("%w: %s", ErrQueenMisplaced, m)
	}
	if !IsValidArrow(board, queens, m) {
		return fmt.Errorf("%w: %s", ErrArrowMisplaced, m)
	}
	return nil
}

// CanMove reports whether the queen on pos has at least one free adjacent cell.
func CanMove(board *Graph, queens *Queens, pos uint) bool {
	if board.IsIsolated(pos) {
		return false
	}
	for dir := FirstDir; dir <= LastDir; dir++ {
		neighbor := board.Neighbor(pos, dir)
		if neighbor != None && !queens.Exists(neighbor) {
			return true
		}
	}
	return false
}

// ApplyMove moves player's queen from m.QueenSrc to m.QueenDst. The unset move is
// ignored. A missing source queen means the move was never validated and panics.
func ApplyMove(queens *Queens, player Player, m Move) {
	if m.IsNone() {
		return
	}
	if !queens.Move(player, m.QueenSrc, m.QueenDst) {
		panic(fmt.Sprintf("%s has no queen on %d", player, m.QueenSrc))
	}
}

// Play applies m for player: the queen moves and the arrow cell is disconnected.
func Play(board *Graph, queens *Queens, player Player, m Move) {
	if m.IsNone() {
		return
	}
	ApplyMove(queens, player, m)
	board.Disconnect(m.ArrowDst)
}

// QueenMobility counts the cells a queen on src could move to.
func QueenMobility(board *Graph, queens *Queens, src uint) int {
	count := 0
	for dir := FirstDir; dir <= LastDir; dir++ {
		for pos := board.Neighbor(src, dir); open(board, queens, pos); pos = board.Neighbor(pos, dir) {
			count++
		}
	}
	return count
}

// Targets lists the cells a queen on src could move to, ray by ray.
func Targets(board *Graph, queens *Queens, src uint) []uint {
	targets := []uint{}
	for dir := FirstDir; dir <= LastDir; dir++ {
		for pos := board.Neighbor(src, dir); open(board, queens, pos); pos = board.Neighbor(pos, dir) {
			targets = append(targets, pos)
		}
	}
	return targets
}

// Mobility counts queen destinations summed over all of player's queens.
func Mobility(board *Graph, queens *Queens, player Player) int {
	return lo.SumBy(queens.Positions(player), func(pos uint) int {
		return QueenMobility(board, queens, pos)
	})
}

// MovableQueens counts player's queens that can still move.
func MovableQueens(board *Graph, queens *Queens, player Player) int {
	return lo.CountBy(queens.Positions(player), func(pos uint) bool {
		return CanMove(board, queens, pos)
	})
}

// IsOver reports whether some player has no movable queen left.
func IsOver(board *Graph, queens *Queens) bool {
	return MovableQueens(board, queens, Player1) == 0 || MovableQueens(board, queens, Player2) == 0
}
