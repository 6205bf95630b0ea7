package main

import (
	"flag"
	"fmt"
	"os"

	"chinesecheckers/experiments"
	"chinesecheckers/game"
	"chinesecheckers/meta"
	"chinesecheckers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "match", "One of match, throughput, tune, export, openings")
	logLevel := flag.String("log-level", "info", "Log level")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Search depth in plies")
	games := flag.Int("games", 10, "Number of games per matchup or export run")
	maxMoves := flag.Int("max-moves", meta.MAX_MOVES, "Move cap per game")
	out := flag.String("out", "results", "Output directory")
	seed := flag.Uint64("seed", 1, "Random seed")
	longJumps := flag.Bool("long-jumps", false, "Allow symmetric jumps over distant pieces")
	tunerConfig := flag.String("config", "", "Tuner YAML configuration")
	bookPath := flag.String("book", "openings.dat", "Opening book file")
	plies := flag.Int("plies", 4, "Player0 turns explored by the openings generator")
	window := flag.Float64("window", 0, "Root window half-width for the openings generator, 0 for unbounded")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	var rules []game.Option
	if *longJumps {
		rules = append(rules, game.WithLongJumps())
	}

	if err := run(*mode, *depth, *games, *maxMoves, *out, *seed, rules, *tunerConfig, *bookPath, *plies, *window); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func run(mode string, depth, games, maxMoves int, out string, seed uint64, rules []game.Option, tunerConfig, bookPath string, plies int, window float64) error {
	match := experiments.MatchConfig{Games: games, MaxMoves: maxMoves, OutputDir: out, Rules: rules, Seed: seed}

	switch mode {
	case "match":
		return experiments.RunDepthExperiment(match)
	case "throughput":
		return experiments.RunThroughputExperiment(match, depth)
	case "tune":
		config := experiments.DefaultTunerConfig()
		if tunerConfig != "" {
			var err error
			if config, err = experiments.LoadTunerConfig(tunerConfig); err != nil {
				return err
			}
		}
		_, err := experiments.NewTuner(config).Run()
		return err
	case "export":
		config := experiments.DefaultExportConfig()
		config.Games = games
		config.Depth = depth
		config.MaxMoves = maxMoves
		config.Seed = seed
		config.Dir = out
		config.Rules = rules
		x, err := experiments.NewExporter(config)
		if err != nil {
			return err
		}
		written, err := x.Run()
		log.Info().Msgf("exported %d positions to %s", written, out)
		return err
	case "openings":
		options := []searcher.Option{searcher.WithDepth(depth)}
		if window > 0 {
			options = append(options, searcher.WithWindow(-window, window))
		}
		s := searcher.NewAlphaBeta(options...)
		book := experiments.GenerateOpenings(game.NewGame(rules...), s, plies)
		log.Info().Msgf("generated %d openings", len(book))
		return experiments.SaveBook(book, bookPath)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}
