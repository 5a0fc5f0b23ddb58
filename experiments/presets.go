package experiments

import (
	"fmt"

	"amazons/experiments/metrics"
	"amazons/searcher"
)

// Presets lists the experiments that can be run by name.
var Presets = map[string]func(base Experiment) Experiment{
	"baseline":   Baseline,
	"depth-bias": DepthBias,
	"thinning":   Thinning,
}

// Preset applies the named preset to base.
func Preset(name string, base Experiment) (Experiment, error) {
	preset, ok := Presets[name]
	if !ok {
		return Experiment{}, fmt.Errorf("unknown experiment %q", name)
	}
	return preset(base), nil
}

// Baseline pits the default search player against the random player and a
// single ply greedy player.
func Baseline(base Experiment) Experiment {
	search := metrics.AgentConfig{ID: 0, Kind: KindSearch, DepthBias: searcher.DefaultDepthBias, RatioKept: searcher.DefaultRatioKept}
	base.Name = "baseline"
	base.Agents = []metrics.AgentConfig{
		search,
		{ID: 1, Kind: KindRandom},
		{ID: 2, Kind: KindSearch, FixedDepth: 1},
	}
	base.MatchUps = [][2]int{{0, 1}, {1, 0}, {0, 2}, {2, 0}}
	return base
}

// DepthBias pairs agents with a growing constant search depth part against the default agent.
func DepthBias(base Experiment) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindSearch, DepthBias: searcher.DefaultDepthBias}
	base.Name = "depth_bias"
	base.Agents = []metrics.AgentConfig{baseline}
	for i, bias := range []float64{1.0, 1.5, 2.0, 2.5} {
		config := metrics.AgentConfig{ID: i + 1, Kind: KindSearch, DepthBias: bias}
		base.Agents = append(base.Agents, config)
		base.MatchUps = append(base.MatchUps, [2]int{baseline.ID, config.ID}, [2]int{config.ID, baseline.ID})
	}
	return base
}

// Thinning pairs agents dropping queen candidates against the default agent.
func Thinning(base Experiment) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindSearch, DepthBias: searcher.DefaultDepthBias, RatioKept: 1}
	base.Name = "thinning"
	base.Agents = []metrics.AgentConfig{baseline}
	for i, ratio := range []int{2, 3, 5} {
		config := metrics.AgentConfig{ID: i + 1, Kind: KindSearch, DepthBias: searcher.DefaultDepthBias, RatioKept: ratio}
		base.Agents = append(base.Agents, config)
		base.MatchUps = append(base.MatchUps, [2]int{baseline.ID, config.ID}, [2]int{config.ID, baseline.ID})
	}
	return base
}
