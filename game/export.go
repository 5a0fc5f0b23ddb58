package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var queenColors = [NumPlayers]string{"red", "blue"}

// WriteDot writes the position as a Graphviz digraph: one square node per cell
// laid out on the grid, one arc per remaining edge, queens filled with their
// player's color.
func (gs *GameState) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	size := gs.Size

	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "node [shape=square, width=0.5, height=0.5, style=filled, fillcolor=gray];")
	for i := uint(0); i < size; i++ {
		for j := uint(0); j < size; j++ {
			fmt.Fprintf(bw, "%d [pos=\"%d,%d!\"]\n", i*size+j, j, size-(i+1))
		}
	}
	for pos := uint(0); pos < gs.Board.NumVertices(); pos++ {
		for dir := FirstDir; dir <= LastDir; dir++ {
			if to := gs.Board.Neighbor(pos, dir); to != None {
				fmt.Fprintf(bw, "%d -> %d;\n", pos, to)
			}
		}
	}
	for p := Player1; p <= Player2; p++ {
		for _, pos := range gs.Queens.Positions(p) {
			if pos < gs.Board.NumVertices() {
				fmt.Fprintf(bw, "%d [fillcolor=%s]\n", pos, queenColors[p])
			}
		}
	}
	fmt.Fprint(bw, "}")
	return bw.Flush()
}

// String draws the board row by row: '1' and '2' for queens, '#' for cells
// without edges, '.' for free cells.
func (gs *GameState) String() string {
	var sb strings.Builder
	for i := uint(0); i < gs.Size; i++ {
		for j := uint(0); j < gs.Size; j++ {
			pos := i*gs.Size + j
			switch {
			case gs.Queens.ExistsForPlayer(Player1, pos):
				sb.WriteByte('1')
			case gs.Queens.ExistsForPlayer(Player2, pos):
				sb.WriteByte('2')
			case gs.Board.IsIsolated(pos):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
