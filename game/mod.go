package game

// Player identifies one of the two sides. Player1 and Player2 double as indices
// into per-player arrays.
type Player int

const (
	Undefined Player = iota - 1
	Player1
	Player2
)

const NumPlayers = 2

// Other returns the opposing player.
func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "undefined"
	}
}

// Evaluates a position to a score from player's perspective, higher is better for player.
type Evaluate func(board *Graph, queens *Queens, player Player) float64
