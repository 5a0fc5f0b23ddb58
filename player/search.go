package player

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// SearchPlayer picks its moves with alpha-beta search.
type SearchPlayer struct {
	state
	name     string
	searcher *searcher.AlphaBeta
	rng      *rand.Rand
	last     metrics.SearchMetric
}

// NewSearchPlayer returns a search player whose candidate thinning draws from
// a generator seeded with seed.
func NewSearchPlayer(name string, seed uint64, options ...searcher.Option) *SearchPlayer {
	return &SearchPlayer{
		name:     name,
		searcher: searcher.NewAlphaBeta(append([]searcher.Option{searcher.WithMetrics()}, options...)...),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (p *SearchPlayer) Name() string {
	return p.name
}

func (p *SearchPlayer) Initialize(id game.Player, board *game.Graph, queenCount int, positions [game.NumPlayers][]uint) {
	p.initialize(id, board, queenCount, positions)
}

func (p *SearchPlayer) Play(previous game.Move) (game.Move, metrics.SearchMetric) {
	p.playOpponent(previous)

	c := searcher.NewContext(p.id, p.board, p.queens, p.rng)
	result, metric := p.searcher.Search(c)
	p.last = metric

	if result.Move.IsNone() {
		log.Info().Msgf("%s (%s) has no move left", p.name, p.id)
		return result.Move, metric
	}

	p.playOwn(result.Move)
	log.Debug().Msgf("%s (%s) plays %s at depth %d, value %.4f, %d nodes in %s",
		p.name, p.id, result.Move, result.Depth, result.Value, metric.Nodes, metric.Duration)
	return result.Move, metric
}

// LastMetrics returns the statistics of the latest search.
func (p *SearchPlayer) LastMetrics() metrics.SearchMetric {
	return p.last
}

func (p *SearchPlayer) Finalize() {
	p.finalize()
}
