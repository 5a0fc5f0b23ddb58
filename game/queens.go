package game

import (
	"fmt"

	"github.com/samber/lo"
)

// Queens holds the ordered queen positions of both players. No two queens ever
// share a cell.
type Queens struct {
	count     int
	positions [NumPlayers][]uint
}

// NewQueens returns a set of count queens per player, all positions unset.
func NewQueens(count int) *Queens {
	q := &Queens{count: count}
	for p := range q.positions {
		q.positions[p] = make([]uint, count)
		for i := range q.positions[p] {
			q.positions[p][i] = None
		}
	}
	return q
}

// NewQueensFrom copies the given positions. Both players must have the same number of queens.
func NewQueensFrom(positions [NumPlayers][]uint) *Queens {
	if len(positions[Player1]) != len(positions[Player2]) {
		panic(fmt.Sprintf("queen counts differ: %d vs %d", len(positions[Player1]), len(positions[Player2])))
	}
	q := NewQueens(len(positions[Player1]))
	for p := range positions {
		copy(q.positions[p], positions[p])
	}
	return q
}

// PlaceQueens lays out count queens per player on a size*size grid. Player1's
// queens go along the top row and the upper part of both side columns, Player2
// gets the point reflection through the centre. count must be a multiple of 4.
func PlaceQueens(size uint, count int) *Queens {
	q := NewQueens(count)
	index := func(x, y uint) uint { return y*size + x }

	perSide := count / 4
	for k := 0; k < perSide; k++ {
		step := uint(1 + 2*k)
		q.positions[Player1][0*perSide+k] = index(0, step)
		q.positions[Player1][1*perSide+k] = index(step, 0)
		q.positions[Player1][2*perSide+k] = index(size-1, step)
		q.positions[Player1][3*perSide+k] = index(size-1-step, 0)
	}

	last := size*size - 1
	for i, pos := range q.positions[Player1] {
		q.positions[Player2][i] = last - pos
	}
	return q
}

// Count returns the number of queens per player.
func (q *Queens) Count() int {
	return q.count
}

// Positions returns player's queen positions. The slice is owned by q.
func (q *Queens) Positions(player Player) []uint {
	return q.positions[player]
}

func (q *Queens) ExistsForPlayer(player Player, pos uint) bool {
	return lo.IndexOf(q.positions[player], pos) >= 0
}

// Exists reports whether any queen stands on pos.
func (q *Queens) Exists(pos uint) bool {
	return q.ExistsForPlayer(Player1, pos) || q.ExistsForPlayer(Player2, pos)
}

// Move relocates player's queen standing on src to dst. It returns false when
// player has no queen on src.
func (q *Queens) Move(player Player, src, dst uint) bool {
	i := lo.IndexOf(q.positions[player], src)
	if i < 0 {
		return false
	}
	q.positions[player][i] = dst
	return true
}

func (q *Queens) Copy() *Queens {
	c := &Queens{}
	c.CopyFrom(q)
	return c
}

// CopyFrom overwrites q with src, reusing q's storage when it fits.
func (q *Queens) CopyFrom(src *Queens) {
	q.count = src.count
	for p := range src.positions {
		if cap(q.positions[p]) < len(src.positions[p]) {
			q.positions[p] = make([]uint, len(src.positions[p]))
		}
		q.positions[p] = q.positions[p][:len(src.positions[p])]
		copy(q.positions[p], src.positions[p])
	}
}
