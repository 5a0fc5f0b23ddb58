package player

import (
	"amazons/experiments/metrics"
	"amazons/game"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// RandomPlayer plays a uniformly drawn movable queen, destination and arrow.
// It is the baseline opponent in experiments.
type RandomPlayer struct {
	state
	name string
	rng  *rand.Rand
}

func NewRandomPlayer(name string, seed uint64) *RandomPlayer {
	return &RandomPlayer{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPlayer) Name() string {
	return p.name
}

func (p *RandomPlayer) Initialize(id game.Player, board *game.Graph, queenCount int, positions [game.NumPlayers][]uint) {
	p.initialize(id, board, queenCount, positions)
}

func (p *RandomPlayer) Play(previous game.Move) (game.Move, metrics.SearchMetric) {
	p.playOpponent(previous)

	movable := lo.Filter(p.queens.Positions(p.id), func(pos uint, _ int) bool {
		return game.CanMove(p.board, p.queens, pos)
	})
	if len(movable) == 0 {
		return game.NoMove, metrics.SearchMetric{}
	}

	src := movable[p.rng.Intn(len(movable))]
	targets := game.Targets(p.board, p.queens, src)
	dst := targets[p.rng.Intn(len(targets))]
	// The arrow flies before the queen leaves src, so src itself is added by hand
	arrows := append(game.Targets(p.board, p.queens, dst), src)
	m := game.Move{QueenSrc: src, QueenDst: dst, ArrowDst: arrows[p.rng.Intn(len(arrows))]}

	p.playOwn(m)
	return m, metrics.SearchMetric{}
}

func (p *RandomPlayer) Finalize() {
	p.finalize()
}
