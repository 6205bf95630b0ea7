package experiments

import (
	"chinesecheckers/experiments/metrics"
)

// RunThroughputExperiment measures root-split speedup: each matchup uses the
// same config for both players for the same playing strength and similar
// game length.
func RunThroughputExperiment(config MatchConfig, depth int) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: depth, Workers: 1},
		{ID: 2, Depth: depth, Workers: 2},
		{ID: 3, Depth: depth, Workers: 4},
		{ID: 4, Depth: depth, Workers: 8},
		{ID: 5, Depth: depth, Workers: 16},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, c := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{c, c})
	}
	return runExperiment("throughput", config, configs, matchUps)
}
