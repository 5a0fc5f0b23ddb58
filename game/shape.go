package game

import "fmt"

// Shape selects the board topology.
type Shape byte

const (
	Square Shape = 'c'
	Donut  Shape = 'd'
	Clover Shape = 't'
	Eight  Shape = '8'
)

const (
	DefaultShape = Square
	DefaultSize  = 8
	MinSize      = 5
)

var defaultSizes = map[Shape]uint{
	Square: DefaultSize,
	Donut:  9,
	Clover: 15,
	Eight:  12,
}

// sizeDivisors holds the symmetry each topology needs from the side length.
var sizeDivisors = map[Shape]uint{
	Square: 1,
	Donut:  3,
	Clover: 5,
	Eight:  4,
}

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Donut:
		return "donut"
	case Clover:
		return "clover"
	case Eight:
		return "eight"
	}
	return fmt.Sprintf("shape(%q)", byte(s))
}

func (s Shape) IsValid() bool {
	_, ok := sizeDivisors[s]
	return ok
}

// ParseShape accepts either the one letter tag or the name of a shape.
func ParseShape(v string) (Shape, error) {
	for s := range sizeDivisors {
		if v == string(rune(s)) || v == s.String() {
			return s, nil
		}
	}
	return DefaultShape, fmt.Errorf("unknown board shape %q", v)
}

// ValidateSize returns the side length actually used for shape: sizes below
// MinSize fall back to DefaultSize, and sizes breaking the topology's symmetry
// fall back to the topology's default.
func ValidateSize(shape Shape, size uint) uint {
	if !shape.IsValid() {
		shape = DefaultShape
	}
	if size < MinSize {
		size = DefaultSize
	}
	if size%sizeDivisors[shape] != 0 {
		return defaultSizes[shape]
	}
	return size
}

// QueenCount returns the number of queens each player starts with on a board of side size.
func QueenCount(size uint) int {
	return 4 * int(size/10+1)
}

func between(i, a, b uint) bool {
	return i >= a && i < b
}

func inside(i, j, a, b uint) bool {
	return between(i, a, b) && between(j, a, b)
}

// excluded reports whether the edge (i1,j1)-(i2,j2) is cut out of shape on a board of side m.
func (s Shape) excluded(i1, j1, i2, j2, m uint) bool {
	switch s {
	case Donut:
		sq := m / 3
		return inside(i1, j1, sq, 2*sq) || inside(i2, j2, sq, 2*sq)
	case Clover:
		sq := m / 5
		if !inside(i1, j1, sq, 4*sq) && !inside(i2, j2, sq, 4*sq) {
			return false
		}
		crossRows := between(i1, 2*sq, 3*sq) && between(i2, 2*sq, 3*sq)
		crossCols := between(j1, 2*sq, 3*sq) && between(j2, 2*sq, 3*sq)
		return !crossRows && !crossCols
	case Eight:
		sq := m / 4
		either := func(x1, x2, a, b uint) bool { return between(x1, a, b) || between(x2, a, b) }
		upperRight := either(i1, i2, sq, 2*sq) && either(j1, j2, 2*sq, 3*sq)
		lowerLeft := either(i1, i2, 2*sq, 3*sq) && either(j1, j2, sq, 2*sq)
		return upperRight || lowerLeft
	}
	return false
}

// NewGridGraph builds the 8-direction grid of side size with no cell cut out.
func NewGridGraph(size uint) *Graph {
	return buildGraph(Square, size)
}

// NewBoard validates size for shape and builds the corresponding board. It
// returns the board and the side length actually used.
func NewBoard(shape Shape, size uint) (*Graph, uint) {
	if !shape.IsValid() {
		shape = DefaultShape
	}
	size = ValidateSize(shape, size)
	return buildGraph(shape, size), size
}

func buildGraph(shape Shape, size uint) *Graph {
	g := NewGraph(size * size)
	for i := uint(0); i < size; i++ {
		for j := uint(0); j < size; j++ {
			for dir := FirstDir; dir <= LastDir; dir++ {
				di, dj := dir.offset()
				ni, nj := int(i)+di, int(j)+dj
				if ni < 0 || nj < 0 || ni >= int(size) || nj >= int(size) {
					continue
				}
				if shape.excluded(i, j, uint(ni), uint(nj), size) {
					continue
				}
				g.AddEdge(i*size+j, uint(ni)*size+uint(nj), dir)
			}
		}
	}

	if shape == Eight {
		mid := size / 2
		centre, diagonal := mid*size+mid, (mid-1)*size+mid-1
		g.AddEdge(centre, diagonal, NorthWest)
		g.AddEdge(diagonal, centre, SouthEast)
	}
	return g
}
