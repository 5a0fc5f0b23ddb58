package game

// Direction labels an edge of the board graph with the compass direction it points to.
type Direction uint8

const (
	NoDir Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

const (
	FirstDir = North
	LastDir  = NorthWest
	NumDirs  = int(LastDir)
)

var dirNames = [...]string{"none", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if int(d) >= len(dirNames) {
		return "invalid"
	}
	return dirNames[d]
}

// Opposite returns the direction pointing back along the same line.
func (d Direction) Opposite() Direction {
	if d == NoDir || d > LastDir {
		return NoDir
	}
	return (d+3)%8 + 1
}

// offset returns the (row, column) step of d on a grid.
func (d Direction) offset() (di, dj int) {
	switch d {
	case North:
		return -1, 0
	case NorthEast:
		return -1, 1
	case East:
		return 0, 1
	case SouthEast:
		return 1, 1
	case South:
		return 1, 0
	case SouthWest:
		return 1, -1
	case West:
		return 0, -1
	case NorthWest:
		return -1, -1
	}
	return 0, 0
}
