package metrics

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Stat is a mean with its standard deviation.
type Stat struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
}

type AgentSummary struct {
	Games int `yaml:"games"`
	Wins  int `yaml:"wins"`
}

// Summary aggregates the records of an experiment.
type Summary struct {
	Games       int                  `yaml:"games"`
	Forfeits    int                  `yaml:"forfeits"`
	GameLength  Stat                 `yaml:"game_length"`
	SearchDepth Stat                 `yaml:"search_depth"`
	Nodes       Stat                 `yaml:"nodes_per_search"`
	Agents      map[int]AgentSummary `yaml:"agents"`
}

func newStat(xs []float64) Stat {
	if len(xs) == 0 {
		return Stat{}
	}
	if len(xs) == 1 {
		return Stat{Mean: xs[0]}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Stat{Mean: mean, StdDev: std}
}

// Summarize computes per agent win counts and the distribution of game length
// and search effort. Moves without a search (random players) are left out of
// the search statistics.
func Summarize(games []GameRecord, moves []MoveRecord) Summary {
	searched := lo.Filter(moves, func(m MoveRecord, _ int) bool { return m.Nodes > 0 })

	agents := map[int]AgentSummary{}
	for _, g := range games {
		for i, id := range []int{g.Agent1, g.Agent2} {
			s := agents[id]
			s.Games++
			if int(g.Winner) == i {
				s.Wins++
			}
			agents[id] = s
		}
	}

	return Summary{
		Games:    len(games),
		Forfeits: lo.CountBy(games, func(g GameRecord) bool { return g.Forfeit != "" }),
		GameLength: newStat(lo.Map(games, func(g GameRecord, _ int) float64 {
			return float64(g.TotalMoves)
		})),
		SearchDepth: newStat(lo.Map(searched, func(m MoveRecord, _ int) float64 {
			return float64(m.Depth)
		})),
		Nodes: newStat(lo.Map(searched, func(m MoveRecord, _ int) float64 {
			return float64(m.Nodes)
		})),
		Agents: agents,
	}
}
