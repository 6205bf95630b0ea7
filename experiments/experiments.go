package experiments

import (
	"fmt"

	"chinesecheckers/engine"
	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"
	"chinesecheckers/meta"
	"chinesecheckers/player"
	"chinesecheckers/searcher"

	"github.com/rs/zerolog/log"
)

// MatchConfig drives a series of games between agent pairs.
type MatchConfig struct {
	Games     int
	MaxMoves  int
	OutputDir string
	Rules     []game.Option
	Seed      uint64
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{Games: 10, MaxMoves: meta.MAX_MOVES, OutputDir: "results", Seed: 1}
}

// RunDepthExperiment pairs a depth-1 baseline against deeper searchers, and
// a random mover against the baseline.
func RunDepthExperiment(config MatchConfig) error {
	random := metrics.AgentConfig{ID: 0, Random: true}
	baseline := metrics.AgentConfig{ID: 1, Depth: 1, Workers: 1}
	// The deeper agents use the transposition table, which ignores repetition
	// history, so their scores trade exactness for speed near draws.
	depthConfigs := []metrics.AgentConfig{
		{ID: 2, Depth: 2, Workers: 1},
		{ID: 3, Depth: 3, Workers: 1, Table: true},
		{ID: 4, Depth: 4, Workers: meta.WORKERS, Table: true},
	}

	matchUps := [][2]metrics.AgentConfig{{random, baseline}}
	for _, config := range depthConfigs {
		// Alternate the starting side
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config}, [2]metrics.AgentConfig{config, baseline})
	}

	configs := append([]metrics.AgentConfig{random, baseline}, depthConfigs...)
	return runExperiment("depth", config, configs, matchUps)
}

func runExperiment(name string, config MatchConfig, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < config.Games; i++ {
			count++
			result, gameMetric, moveMetrics := runGame(config, matchup, config.Seed+uint64(count))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchup[0].ID,
				Agent2:     matchup[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with result: %v", mi+1, len(matchUps), i+1, result)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(config.OutputDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %s results in %s", name, writer.Dir())
	return nil
}

// runGame plays a single game from the start position, matchup[0] moving first.
func runGame(config MatchConfig, matchup [2]metrics.AgentConfig, seed uint64) (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	agents := [2]player.Agent{
		createAgent(matchup[0], seed),
		createAgent(matchup[1], seed+1),
	}
	e := engine.NewLocalEngine(game.NewGame(config.Rules...), agents, engine.WithMaxMoves(config.MaxMoves))
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) player.Agent {
	if config.Random {
		return player.NewRandomAgent(seed)
	}
	return player.NewSearchAgent(createSearcher(config), config.Workers)
}

func createSearcher(config metrics.AgentConfig, extra ...searcher.Option) *searcher.AlphaBeta {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Table {
		options = append(options, searcher.WithTranspositionTable())
	}

	return searcher.NewAlphaBeta(append(options, extra...)...)
}
