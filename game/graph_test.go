package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	t.Run("neighbors of a grid cell", func(t *testing.T) {
		g := NewGridGraph(4)

		require.Equal(t, uint(1), g.Neighbor(5, North))
		require.Equal(t, uint(6), g.Neighbor(5, East))
		require.Equal(t, uint(10), g.Neighbor(5, SouthEast))
		require.Equal(t, uint(0), g.Neighbor(5, NorthWest))
		require.Equal(t, None, g.Neighbor(0, North), "Border cells should have no outside neighbor")
		require.Equal(t, None, g.Neighbor(16, North), "Out of range cells should have no neighbor")
		require.Equal(t, None, g.Neighbor(5, NoDir), "NoDir should have no neighbor")
	})

	t.Run("edges come in opposite pairs", func(t *testing.T) {
		g := NewGridGraph(5)

		for pos := uint(0); pos < g.NumVertices(); pos++ {
			for dir := FirstDir; dir <= LastDir; dir++ {
				if to := g.Neighbor(pos, dir); to != None {
					require.Equal(t, pos, g.Neighbor(to, dir.Opposite()), "Edge %d %s should have a reciprocal", pos, dir)
				}
			}
		}
		require.Equal(t, uint(5), g.Size())
	})

	t.Run("disconnect removes both directions", func(t *testing.T) {
		g := NewGridGraph(4)
		before := g.NumEdges()

		g.Disconnect(5)

		require.True(t, g.IsIsolated(5), "Disconnected cell should be isolated")
		require.Equal(t, before-16, g.NumEdges(), "Eight edges out and eight edges in should be gone")
		for pos := uint(0); pos < g.NumVertices(); pos++ {
			for dir := FirstDir; dir <= LastDir; dir++ {
				require.NotEqual(t, uint(5), g.Neighbor(pos, dir), "No edge should point to a disconnected cell")
			}
		}
	})

	t.Run("disconnect removes one-way edges", func(t *testing.T) {
		g := NewGraph(2)
		g.AddEdge(0, 1, East)

		g.Disconnect(1)

		require.Equal(t, None, g.Neighbor(0, East), "An edge only pointing at the cell should be gone")
		require.True(t, g.IsIsolated(0))

		g = NewGridGraph(3)
		g.edges[slot(4, NorthWest)] = None
		g.Disconnect(4)

		require.True(t, g.IsIsolated(4))
		require.Equal(t, None, g.Neighbor(0, SouthEast), "The corner should lose its edge to the centre")
		require.Equal(t, uint(1), g.Neighbor(0, East))
	})

	t.Run("disconnect is idempotent", func(t *testing.T) {
		g := NewGridGraph(4)
		g.Disconnect(0)
		edges := g.NumEdges()

		g.Disconnect(0)
		g.Disconnect(99)

		require.Equal(t, edges, g.NumEdges())
	})

	t.Run("copies are independent", func(t *testing.T) {
		g := NewGridGraph(4)
		c := g.Copy()
		require.Empty(t, cmp.Diff(g.edges, c.edges), "Copy should hold the same edges")

		c.Disconnect(5)
		require.False(t, g.IsIsolated(5), "Changing the copy should not change the original")

		g.CopyFrom(c)
		require.True(t, g.IsIsolated(5), "CopyFrom should overwrite the content")
	})

	t.Run("adding an edge out of range", func(t *testing.T) {
		g := NewGraph(4)

		require.Panics(t, func() { g.AddEdge(0, 4, East) })
		require.Panics(t, func() { g.AddEdge(0, 1, NoDir) })
	})
}

func TestDirection(t *testing.T) {
	t.Run("opposites", func(t *testing.T) {
		pairs := map[Direction]Direction{
			North:     South,
			NorthEast: SouthWest,
			East:      West,
			SouthEast: NorthWest,
		}
		for d, want := range pairs {
			require.Equal(t, want, d.Opposite())
			require.Equal(t, d, want.Opposite())
		}
		require.Equal(t, NoDir, NoDir.Opposite())
	})
}
