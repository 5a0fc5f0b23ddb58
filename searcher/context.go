package searcher

import (
	"amazons/game"

	"golang.org/x/exp/rand"
)

// Context carries everything a single search needs. It is created for one Search
// call and must not be shared between concurrent searches.
//
// The context owns one board/queens slot per depth level. The call at depth d
// copies its parent's slot (depth d+1, or the authoritative position at the
// root) into slot d before playing its move, so no two active calls share
// mutable state.
type Context struct {
	player game.Player
	board  *game.Graph  // Authoritative position, never mutated by the search
	queens *game.Queens // Authoritative position, never mutated by the search
	rng    *rand.Rand   // Only consumed when candidates are thinned

	boards     []*game.Graph
	queenSets  []*game.Queens
	queenMoves [][]uint
	arrowMoves [][]uint
}

// NewContext returns a context searching for player from the given position.
// rng may be nil when candidate thinning is disabled.
func NewContext(player game.Player, board *game.Graph, queens *game.Queens, rng *rand.Rand) *Context {
	return &Context{
		player: player,
		board:  board,
		queens: queens,
		rng:    rng,
	}
}

func (c *Context) Player() game.Player {
	return c.player
}

// allocate prepares the slots for depth levels 0..depth.
func (c *Context) allocate(depth int) {
	n := depth + 1
	vertices := int(c.board.NumVertices())

	c.boards = make([]*game.Graph, n)
	c.queenSets = make([]*game.Queens, n)
	c.queenMoves = make([][]uint, n)
	c.arrowMoves = make([][]uint, n)
	for i := 0; i < n; i++ {
		c.boards[i] = c.board.Copy()
		c.queenSets[i] = c.queens.Copy()
		c.queenMoves[i] = make([]uint, 0, vertices)
		c.arrowMoves[i] = make([]uint, 0, vertices+1)
	}
}

func (c *Context) release() {
	c.boards = nil
	c.queenSets = nil
	c.queenMoves = nil
	c.arrowMoves = nil
}

// enter refreshes the slot of depth from its parent and returns it.
func (c *Context) enter(depth int) (*game.Graph, *game.Queens) {
	parentBoard, parentQueens := c.board, c.queens
	if depth+1 < len(c.boards) {
		parentBoard, parentQueens = c.boards[depth+1], c.queenSets[depth+1]
	}
	c.boards[depth].CopyFrom(parentBoard)
	c.queenSets[depth].CopyFrom(parentQueens)
	return c.boards[depth], c.queenSets[depth]
}
