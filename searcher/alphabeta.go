package searcher

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"math"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// Result is the outcome of a search: the move to play, its minimax value for
// the searching player and the depth searched.
type Result struct {
	Move  game.Move
	Value float64
	Depth int
}

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning. An
// AlphaBeta holds its metrics collector, so it runs one search at a time.
type AlphaBeta struct {
	depthBias  float64
	ratioKept  int
	maxDepth   int // 0 leaves the dynamic depth uncapped
	fixedDepth int // > 0 bypasses the dynamic depth
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepthBias(bias float64) Option {
	return func(ab *AlphaBeta) {
		if bias >= 1 {
			ab.depthBias = bias
		}
	}
}

func WithRatioKept(ratio int) Option {
	return func(ab *AlphaBeta) {
		if ratio >= 1 {
			ab.ratioKept = ratio
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.maxDepth = depth
		}
	}
}

func WithFixedDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.fixedDepth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depthBias: DefaultDepthBias,
		ratioKept: DefaultRatioKept,
		evaluate:  game.EvaluateMobility,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) RatioKept() int {
	return ab.ratioKept
}

// Depth returns the depth Search would use from c's position.
func (ab *AlphaBeta) Depth(c *Context) int {
	if ab.fixedDepth > 0 {
		return ab.fixedDepth
	}
	mobility := game.Mobility(c.board, c.queens, c.player) + game.Mobility(c.board, c.queens, c.player.Other())
	depth := OptimalDepth(c.board.NumVertices(), mobility, ab.depthBias)
	if ab.maxDepth > 0 && depth > ab.maxDepth {
		depth = ab.maxDepth
	}
	return depth
}

// Search picks a move for c's player. When the player has no movable queen the
// result holds game.NoMove.
func (ab *AlphaBeta) Search(c *Context) (Result, metrics.SearchMetric) {
	if game.MovableQueens(c.board, c.queens, c.player) == 0 {
		log.Debug().Str("player", c.player.String()).Msg("no-movable-queen")
		return Result{Move: game.NoMove, Value: math.Inf(-1)}, metrics.SearchMetric{}
	}
	return ab.SearchDepth(c, ab.Depth(c))
}

// SearchDepth searches c's position to the given depth.
func (ab *AlphaBeta) SearchDepth(c *Context, depth int) (Result, metrics.SearchMetric) {
	depth = max(depth, 1)
	if ab.ratioKept > 1 && c.rng == nil {
		panic("candidate thinning needs a random source")
	}

	c.allocate(depth)
	defer c.release()

	ab.metrics.Start(depth)
	best := ab.alphabeta(c, game.NoMove, true, depth, depth, math.Inf(-1), math.Inf(1))
	metric := ab.metrics.Complete()

	log.Debug().
		Str("player", c.player.String()).
		Int("depth", depth).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Float64("value", best.value).
		Str("move", best.move.String()).
		Msg("search-done")

	return Result{Move: best.move, Value: best.value, Depth: depth}, metric
}

type node struct {
	move  game.Move
	value float64
}

// improves reports whether candidate replaces best at a node. Only a strict
// improvement counts, so among equal values the move generated first is kept.
func improves(candidate, best node, maximizing bool) bool {
	if maximizing {
		return candidate.value > best.value
	}
	return candidate.value < best.value
}

// alphabeta scores the position reached by playing move. At a maximizing node
// the searching player is to move, so move was played by its opponent, and the
// other way round at a minimizing node. Values are always from the searching
// player's point of view.
func (ab *AlphaBeta) alphabeta(c *Context, move game.Move, maximizing bool, depth, maxDepth int, alpha, beta float64) node {
	ab.metrics.AddNode()

	board, queens := c.enter(depth)
	mover, opponent := c.player, c.player.Other()
	if !maximizing {
		mover, opponent = opponent, mover
	}
	game.Play(board, queens, opponent, move)

	if depth == 0 || (depth < maxDepth && game.IsOver(board, queens)) {
		ab.metrics.AddLeaf()
		return node{move: move, value: ab.evaluate(board, queens, c.player)}
	}

	best := node{move: game.NoMove, value: math.Inf(1)}
	if maximizing {
		best.value = math.Inf(-1)
	}

	for _, src := range queens.Positions(mover) {
		c.queenMoves[depth] = queenCandidates(board, queens, src, ab.ratioKept, c.rng, c.queenMoves[depth][:0])
		for _, dst := range c.queenMoves[depth] {
			c.arrowMoves[depth] = arrowCandidates(board, queens, dst, src, opponent, c.arrowMoves[depth][:0])
			for _, arrow := range c.arrowMoves[depth] {
				next := game.Move{QueenSrc: src, QueenDst: dst, ArrowDst: arrow}
				child := node{
					move:  next,
					value: ab.alphabeta(c, next, !maximizing, depth-1, maxDepth, alpha, beta).value,
				}
				if improves(child, best, maximizing) {
					best = child
				}

				if maximizing {
					if child.value >= beta {
						ab.metrics.AddCutoff()
						return child
					}
					alpha = math.Max(alpha, child.value)
				} else {
					if alpha >= child.value {
						ab.metrics.AddCutoff()
						return child
					}
					beta = math.Min(beta, child.value)
				}
			}
		}
	}
	return best
}
