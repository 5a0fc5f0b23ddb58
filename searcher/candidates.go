package searcher

import (
	"amazons/game"
	"slices"

	"golang.org/x/exp/rand"
)

func free(board *game.Graph, queens *game.Queens, pos uint) bool {
	return pos != game.None && !queens.Exists(pos) && !board.IsIsolated(pos)
}

// thin decides whether to drop the rest of a ray.
func thin(ratioKept int, rng *rand.Rand) bool {
	return ratioKept > 1 && rng.Intn(ratioKept) == 1
}

// blocking counts player's queens adjacent to pos.
func blocking(board *game.Graph, queens *game.Queens, pos uint, player game.Player) int {
	count := 0
	for dir := game.FirstDir; dir <= game.LastDir; dir++ {
		if queens.ExistsForPlayer(player, board.Neighbor(pos, dir)) {
			count++
		}
	}
	return count
}

// queenCandidates appends to buf the destinations of the queen on src, ray by
// ray. Within a ray the farthest cell comes first. Once buf holds a candidate,
// every further cell of a ray may end that ray early (see thin).
func queenCandidates(board *game.Graph, queens *game.Queens, src uint, ratioKept int, rng *rand.Rand, buf []uint) []uint {
	for dir := game.FirstDir; dir <= game.LastDir; dir++ {
		start := len(buf)
		for pos := board.Neighbor(src, dir); free(board, queens, pos); pos = board.Neighbor(pos, dir) {
			if start > 0 && thin(ratioKept, rng) {
				break
			}
			buf = append(buf, pos)
		}
		slices.Reverse(buf[start:])
	}
	return buf
}

// arrowCandidates appends to buf the arrow cells for a queen moving from src to
// dst, ray by ray from dst, farthest first. Once buf holds a candidate, a ray
// stops at the first cell not adjacent to one of opponent's queens. src itself
// is always appended last.
//
// Rays are walked on the position before the queen moves, as the referee does.
func arrowCandidates(board *game.Graph, queens *game.Queens, dst, src uint, opponent game.Player, buf []uint) []uint {
	for dir := game.FirstDir; dir <= game.LastDir; dir++ {
		start := len(buf)
		for pos := board.Neighbor(dst, dir); free(board, queens, pos); pos = board.Neighbor(pos, dir) {
			if start > 0 && blocking(board, queens, pos, opponent) == 0 {
				break
			}
			buf = append(buf, pos)
		}
		slices.Reverse(buf[start:])
	}
	return append(buf, src)
}
