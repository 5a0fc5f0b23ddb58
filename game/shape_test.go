package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func isolated(g *Graph) int {
	count := 0
	for pos := uint(0); pos < g.NumVertices(); pos++ {
		if g.IsIsolated(pos) {
			count++
		}
	}
	return count
}

func TestShapes(t *testing.T) {
	t.Run("size validation", func(t *testing.T) {
		require.Equal(t, uint(8), ValidateSize(Square, 3), "Tiny boards should fall back to the default size")
		require.Equal(t, uint(11), ValidateSize(Square, 11))
		require.Equal(t, uint(12), ValidateSize(Donut, 12))
		require.Equal(t, uint(9), ValidateSize(Donut, 10))
		require.Equal(t, uint(15), ValidateSize(Clover, 12))
		require.Equal(t, uint(20), ValidateSize(Clover, 20))
		require.Equal(t, uint(12), ValidateSize(Eight, 10))
		require.Equal(t, uint(9), ValidateSize(Donut, 4), "Tiny donuts should end on the donut default")
	})

	t.Run("parsing", func(t *testing.T) {
		for _, v := range []string{"d", "donut"} {
			s, err := ParseShape(v)
			require.NoError(t, err)
			require.Equal(t, Donut, s)
		}
		_, err := ParseShape("hexagon")
		require.Error(t, err)
	})

	t.Run("topologies", func(t *testing.T) {
		tests := []struct {
			shape    Shape
			size     uint
			edges    int
			isolated int
		}{
			{Square, 8, 420, 0},
			{Donut, 9, 440, 9},
			{Clover, 15, 1184, 36},
			{Eight, 12, 794, 18},
		}
		for _, tt := range tests {
			board, size := NewBoard(tt.shape, tt.size)

			require.Equal(t, tt.size, size)
			require.Equal(t, tt.size*tt.size, board.NumVertices())
			require.Equal(t, tt.edges, board.NumEdges(), "%s edges", tt.shape)
			require.Equal(t, tt.isolated, isolated(board), "%s holes", tt.shape)
		}
	})

	t.Run("donut hole", func(t *testing.T) {
		board, _ := NewBoard(Donut, 9)

		require.True(t, board.IsIsolated(40), "The centre should be cut out")
		require.Equal(t, None, board.Neighbor(21, SouthEast), "No edge should lead into the hole")
		require.Equal(t, None, board.Neighbor(21, South))
		require.Equal(t, uint(22), board.Neighbor(21, East))
	})

	t.Run("eight centre stitch", func(t *testing.T) {
		board, _ := NewBoard(Eight, 12)

		require.Equal(t, uint(65), board.Neighbor(78, NorthWest))
		require.Equal(t, uint(78), board.Neighbor(65, SouthEast))
	})

	t.Run("queens start on playable cells", func(t *testing.T) {
		for shape := range sizeDivisors {
			board, size := NewBoard(shape, 0)
			queens := PlaceQueens(size, QueenCount(size))

			for p := Player1; p <= Player2; p++ {
				for _, pos := range queens.Positions(p) {
					require.False(t, board.IsIsolated(pos), "%s queen on %d", shape, pos)
				}
			}
		}
	})
}

func TestPlaceQueens(t *testing.T) {
	t.Run("size 20", func(t *testing.T) {
		queens := PlaceQueens(20, QueenCount(20))

		require.Equal(t, 12, queens.Count())
		p1, p2 := queens.Positions(Player1), queens.Positions(Player2)
		require.Equal(t, []uint{20, 1, 39, 18}, []uint{p1[0], p1[3], p1[6], p1[9]})
		require.Equal(t, []uint{379, 398, 360, 381}, []uint{p2[0], p2[3], p2[6], p2[9]})
	})

	t.Run("size 8", func(t *testing.T) {
		queens := PlaceQueens(8, QueenCount(8))

		require.Equal(t, []uint{8, 1, 15, 6}, queens.Positions(Player1))
		require.Equal(t, []uint{55, 62, 48, 57}, queens.Positions(Player2))
	})
}
