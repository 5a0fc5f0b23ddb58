package game

import "math"

// None marks an unset cell index: no neighbor, no move recorded yet.
const None = ^uint(0)

// Graph is the board: a directed graph over cells where every edge carries the
// compass direction it points to. A cell has at most one neighbor per direction,
// which makes neighbor lookup a single index.
//
// Edges are only added while the board is built. Afterwards the graph only loses
// edges through Disconnect.
type Graph struct {
	numVertices uint
	edges       []uint // numVertices*NumDirs, None where there is no edge
}

// NewGraph returns a graph with n vertices and no edges.
func NewGraph(n uint) *Graph {
	edges := make([]uint, int(n)*NumDirs)
	for i := range edges {
		edges[i] = None
	}
	return &Graph{numVertices: n, edges: edges}
}

func slot(pos uint, dir Direction) uint {
	return pos*uint(NumDirs) + uint(dir) - 1
}

func (g *Graph) valid(pos uint, dir Direction) bool {
	return pos < g.numVertices && dir >= FirstDir && dir <= LastDir
}

// AddEdge adds the edge from -> to labelled dir. The reciprocal edge is not added.
func (g *Graph) AddEdge(from, to uint, dir Direction) {
	if !g.valid(from, dir) || to >= g.numVertices {
		panic("edge out of range")
	}
	g.edges[slot(from, dir)] = to
}

// NumVertices returns the number of cells, isolated ones included.
func (g *Graph) NumVertices() uint {
	return g.numVertices
}

// Size returns the side length of the square grid the graph was built on.
func (g *Graph) Size() uint {
	return uint(math.Sqrt(float64(g.numVertices)))
}

// NumEdges counts the remaining directed edges.
func (g *Graph) NumEdges() int {
	count := 0
	for _, to := range g.edges {
		if to != None {
			count++
		}
	}
	return count
}

// Neighbor returns the cell next to pos in direction dir, or None.
func (g *Graph) Neighbor(pos uint, dir Direction) uint {
	if !g.valid(pos, dir) {
		return None
	}
	return g.edges[slot(pos, dir)]
}

// Disconnect removes every edge at pos, outgoing and incoming, turning the cell
// into permanent terrain. Incoming edges are looked up both on the surrounding
// grid cells and on the cells pos points to, so a stitched edge across the board
// goes too.
func (g *Graph) Disconnect(pos uint) {
	if pos >= g.numVertices {
		return
	}
	size := int(g.Size())
	i, j := int(pos)/size, int(pos)%size
	for dir := FirstDir; dir <= LastDir; dir++ {
		di, dj := dir.offset()
		ni, nj := i+di, j+dj
		if ni >= 0 && nj >= 0 && nj < size {
			g.unlink(uint(ni*size+nj), pos)
		}
		if neighbor := g.edges[slot(pos, dir)]; neighbor != None {
			g.unlink(neighbor, pos)
			g.edges[slot(pos, dir)] = None
		}
	}
}

// unlink drops every edge from -> to, whatever its label.
func (g *Graph) unlink(from, to uint) {
	if from >= g.numVertices {
		return
	}
	for dir := FirstDir; dir <= LastDir; dir++ {
		if g.edges[slot(from, dir)] == to {
			g.edges[slot(from, dir)] = None
		}
	}
}

// IsIsolated reports whether pos has no edge left. Out of range cells are isolated.
func (g *Graph) IsIsolated(pos uint) bool {
	if pos >= g.numVertices {
		return true
	}
	for dir := FirstDir; dir <= LastDir; dir++ {
		if g.edges[slot(pos, dir)] != None {
			return false
		}
	}
	return true
}

// Copy returns an independent deep copy.
func (g *Graph) Copy() *Graph {
	edges := make([]uint, len(g.edges))
	copy(edges, g.edges)
	return &Graph{numVertices: g.numVertices, edges: edges}
}

// CopyFrom overwrites g with the content of src, reusing g's storage when it fits.
func (g *Graph) CopyFrom(src *Graph) {
	if cap(g.edges) < len(src.edges) {
		g.edges = make([]uint, len(src.edges))
	}
	g.edges = g.edges[:len(src.edges)]
	copy(g.edges, src.edges)
	g.numVertices = src.numVertices
}
