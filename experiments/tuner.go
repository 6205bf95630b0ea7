package experiments

import (
	"fmt"
	"math/bits"
	"os"
	"path/filepath"
	"slices"

	"chinesecheckers/engine"
	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"
	"chinesecheckers/meta"
	"chinesecheckers/player"
	"chinesecheckers/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type TunerConfig struct {
	PopulationSize      int     `yaml:"population_size"`
	Generations         int     `yaml:"generations"`
	RoundLength         int     `yaml:"round_length"` // generations before the evolving side swaps
	MutationProbability float64 `yaml:"mutation_probability"`
	MutationSigma       float64 `yaml:"mutation_sigma"`
	InitSigma           float64 `yaml:"init_sigma"`
	Depth               int     `yaml:"depth"`
	MaxMoves            int     `yaml:"max_moves"`
	Seed                uint64  `yaml:"seed"`
	Workers             int     `yaml:"workers"`
	OutputDir           string  `yaml:"output_dir"`
}

func DefaultTunerConfig() TunerConfig {
	return TunerConfig{
		PopulationSize:      10,
		Generations:         10,
		RoundLength:         2000,
		MutationProbability: 0.1,
		MutationSigma:       0.1,
		InitSigma:           0.1,
		Depth:               1,
		MaxMoves:            meta.MAX_MOVES,
		Seed:                818934826,
		Workers:             meta.WORKERS,
		OutputDir:           "results",
	}
}

// LoadTunerConfig reads a YAML file over the defaults.
func LoadTunerConfig(path string) (TunerConfig, error) {
	config := DefaultTunerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read tuner config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse tuner config %s: %w", path, err)
	}
	if config.PopulationSize < 2 {
		return config, fmt.Errorf("population size must be at least 2, got %d", config.PopulationSize)
	}
	return config, nil
}

// Individual is a candidate pair of weight tables with values in [0,1].
type Individual struct {
	Progress   game.Weights
	Regression game.Weights
	Score      float64
}

func (i Individual) Evaluator() *game.Evaluator {
	return game.NewEvaluator(i.Progress, i.Regression)
}

// DefaultIndividual holds the quadratic tables scaled into [0,1].
func DefaultIndividual() Individual {
	w := game.DefaultWeights().Scaled(1.0 / 98)
	return Individual{Progress: w, Regression: w, Score: minScore}
}

// minScore is below every score a game can produce.
const minScore = -2

type Tuner struct {
	config     TunerConfig
	rng        *rand.Rand
	population [2][]Individual
	best       [2]Individual
}

func NewTuner(config TunerConfig) *Tuner {
	t := &Tuner{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
		best:   [2]Individual{DefaultIndividual(), DefaultIndividual()},
	}
	for p := range t.population {
		t.population[p] = make([]Individual, config.PopulationSize)
		for i := range t.population[p] {
			t.population[p][i] = t.randomIndividual()
		}
	}
	return t
}

func (t *Tuner) Best(p game.Player) Individual {
	return t.best[p]
}

func (t *Tuner) Population(p game.Player) []Individual {
	return t.population[p]
}

func (t *Tuner) randomIndividual() Individual {
	var ind Individual
	for r := range game.Size {
		for c := range game.Size {
			ind.Progress[r][c] = clamp(t.rng.NormFloat64() * t.config.InitSigma)
			ind.Regression[r][c] = clamp(t.rng.NormFloat64() * t.config.InitSigma)
		}
	}
	return ind
}

// Mutate perturbs each cell with the configured probability by a normal
// variation, keeping values in [0,1].
func (t *Tuner) Mutate(ind *Individual) {
	for r := range game.Size {
		for c := range game.Size {
			if t.rng.Float64() < t.config.MutationProbability {
				ind.Progress[r][c] = clamp(ind.Progress[r][c] + t.rng.NormFloat64()*t.config.MutationSigma)
			}
			if t.rng.Float64() < t.config.MutationProbability {
				ind.Regression[r][c] = clamp(ind.Regression[r][c] + t.rng.NormFloat64()*t.config.MutationSigma)
			}
		}
	}
}

func clamp(v float64) float64 {
	return min(1, max(0, v))
}

// PlayGame plays one depth-limited game and scores it from Player0's side.
func (t *Tuner) PlayGame(white, black *game.Evaluator) float64 {
	agents := [2]player.Agent{
		player.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(t.config.Depth), searcher.WithEvaluator(white)), 1),
		player.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(t.config.Depth), searcher.WithEvaluator(black)), 1),
	}
	g := game.NewGame()
	result, gameMetric, _ := engine.NewLocalEngine(g, agents, engine.WithMaxMoves(t.config.MaxMoves)).Run()
	return gameScore(result, g.Fingerprint(), t.config.MaxMoves-gameMetric.TotalMoves, t.config.MaxMoves)
}

// gameScore rewards quick wins; an unfinished game counts how much of the
// far home is occupied against how much of the near one still is.
func gameScore(result game.Result, f game.Fingerprint, remaining, maxMoves int) float64 {
	switch result {
	case game.Draw:
		return 0
	case game.Player0Won:
		return 1 + float64(remaining)/float64(maxMoves)
	case game.Player1Won:
		return -1 - float64(remaining)/float64(maxMoves)
	}
	occupied := f[game.Player0] | f[game.Player1]
	far := bits.OnesCount64(occupied & game.HomeMask(game.Player1))
	near := bits.OnesCount64(occupied & game.HomeMask(game.Player0))
	return float64(far-near) / 20
}

// Evolve runs one generation of p's population against the opponent's best
// individual and returns its summary.
func (t *Tuner) Evolve(p game.Player, generation int) (metrics.GenerationRecord, error) {
	population := t.population[p]
	opponent := t.best[p.Other()].Evaluator()

	var g errgroup.Group
	g.SetLimit(max(t.config.Workers, 1))
	for i := range population {
		g.Go(func() error {
			if p == game.Player0 {
				population[i].Score = t.PlayGame(population[i].Evaluator(), opponent)
			} else {
				population[i].Score = -t.PlayGame(opponent, population[i].Evaluator())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return metrics.GenerationRecord{}, err
	}

	slices.SortStableFunc(population, func(a, b Individual) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	if population[0].Score > t.best[p].Score {
		t.best[p] = population[0]
	}

	record := metrics.GenerationRecord{
		Generation: generation,
		Player:     int(p),
		Best:       t.best[p].Score,
		Worst:      population[len(population)-1].Score,
	}
	for i := range record.Deciles {
		record.Deciles[i] = population[i*len(population)/10].Score
	}

	t.selectSurvivors(p)
	for i := range t.population[p] {
		t.Mutate(&t.population[p][i])
	}
	return record, nil
}

// selectSurvivors refills the sorted population by stochastic universal
// sampling over the scores shifted by the worst one. The generation's top
// individual stays first and the best so far takes the last slot.
func (t *Tuner) selectSurvivors(p game.Player) {
	sorted := slices.Clone(t.population[p])
	n := len(sorted)
	worst := sorted[n-1].Score
	cumulative := make([]float64, n)
	cumulative[0] = sorted[0].Score - worst
	for i := 1; i < n; i++ {
		cumulative[i] = cumulative[i-1] + sorted[i].Score - worst
	}

	step := cumulative[n-1] / float64(n)
	position := 0.0
	j := 0
	for i := n - 2; i > 0; i-- {
		if position > cumulative[j] {
			j++
		}
		t.population[p][i] = sorted[j]
		position += step
	}
	t.population[p][n-1] = t.best[p]
}

// Run evolves the populations, swapping the evolving side every
// RoundLength generations, and stores the generation summaries and the
// best tables under the output directory.
func (t *Tuner) Run() ([]metrics.GenerationRecord, error) {
	log.Info().Msgf("starting tuner with seed %d", t.config.Seed)

	records := []metrics.GenerationRecord{}
	evolving := game.Player0
	count := 0
	for gen := 0; gen < t.config.Generations; gen++ {
		if count == t.config.RoundLength {
			evolving = evolving.Other()
			count = 0
		}
		record, err := t.Evolve(evolving, gen)
		if err != nil {
			return records, err
		}
		records = append(records, record)
		log.Info().Msgf("generation %d, %v is evolving, best so far: %g, best of generation: %g",
			gen, evolving, record.Best, record.Deciles[0])
		count++
	}

	writer, err := metrics.NewWriter(t.config.OutputDir, "tuner")
	if err != nil {
		return records, fmt.Errorf("failed to create tuner writer: %w", err)
	}
	if err := writer.WriteGenerationRecords(records); err != nil {
		return records, fmt.Errorf("failed to write generation records: %w", err)
	}
	for _, p := range []game.Player{game.Player0, game.Player1} {
		path := filepath.Join(writer.Dir(), fmt.Sprintf("best_%s.json", p))
		if err := t.best[p].Evaluator().Save(path); err != nil {
			return records, fmt.Errorf("failed to store best individual of %v: %w", p, err)
		}
	}
	log.Info().Msgf("stored tuner results in %s", writer.Dir())
	return records, nil
}
